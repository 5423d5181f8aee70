// Package cli turns command-line options into a sale description.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"lgh_sales/internal/sales"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// option maps a viper key to its command-line flag.
type option struct {
	key      string
	flag     string
	required bool
}

var options = []option{
	{key: "address", flag: "address", required: true},
	{key: "area", flag: "area", required: true},
	{key: "rooms", flag: "rooms", required: true},
	{key: "floor", flag: "floor", required: true},
	{key: "purchase_price", flag: "purchase-price", required: true},
	{key: "purchase_date", flag: "purchase-date", required: true},
	{key: "sale_price", flag: "sale-price", required: true},
	{key: "sale_date", flag: "sale-date", required: true},
	{key: "monthly_fee", flag: "monthly-fee"},
	{key: "renovation_costs", flag: "renovation-costs"},
	{key: "broker_fee_percent", flag: "broker-fee"},
	{key: "no_broker_fee", flag: "no-broker-fee"},
	{key: "description", flag: "description"},
}

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Run executes the command with the given arguments (without the program name)
// and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer, logger *zap.Logger) int {
	if logger == nil {
		logger = zap.NewNop()
	}

	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	text, err := generate(fs)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var uErr *usageError
		if errors.As(err, &uErr) {
			fmt.Fprintln(stderr, fs.FlagUsages())
			return ExitUsage
		}
		logger.Error("failed to generate sale description", zap.Error(err))
		return ExitError
	}

	output, _ := fs.GetString("output")
	if output == "" {
		fmt.Fprintln(stdout, text)
		return ExitOK
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		logger.Error("failed to write sale description", zap.String("path", output), zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}
	logger.Debug("sale description written", zap.String("path", output), zap.Int("bytes", len(text)))
	fmt.Fprintf(stdout, "Sale description saved to %s\n", output)
	return ExitOK
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("lgh_sales", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.String("address", "", "Property address")
	fs.Float64("area", 0, "Area in square meters")
	fs.Int("rooms", 0, "Number of rooms")
	fs.Int("floor", 0, "Floor number")
	fs.Float64("purchase-price", 0, "Purchase price in SEK")
	fs.String("purchase-date", "", "Purchase date (YYYY-MM-DD)")
	fs.Float64("sale-price", 0, "Sale price in SEK")
	fs.String("sale-date", "", "Sale date (YYYY-MM-DD)")

	fs.Float64("monthly-fee", 0, "Monthly fee in SEK")
	fs.Float64("renovation-costs", 0, "Renovation costs in SEK")
	fs.Float64("broker-fee", sales.DefaultBrokerFeePercent, "Broker fee percentage")
	fs.Bool("no-broker-fee", false, "Leave the broker fee unset (counts as 0%)")
	fs.String("description", "", "Property description")

	fs.StringP("output", "o", "", "Output file (default: print to stdout)")
	fs.String("config", "", "Read options from a config file (yaml, json, toml)")
	fs.Bool("example", false, "Describe a built-in example sale")
	return fs
}

func generate(fs *pflag.FlagSet) (string, error) {
	if example, _ := fs.GetBool("example"); example {
		return sales.Render(sales.ExampleSale())
	}

	v, err := newViper(fs)
	if err != nil {
		return "", &usageError{err: err}
	}

	in, err := readInput(v)
	if err != nil {
		return "", &usageError{err: err}
	}

	sale, err := in.Sale()
	if err != nil {
		return "", &usageError{err: err}
	}
	return sales.Render(sale)
}

// newViper layers the options: flags, then LGH_* environment variables, then the config file.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("LGH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, opt := range options {
		if err := v.BindPFlag(opt.key, fs.Lookup(opt.flag)); err != nil {
			return nil, err
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return v, nil
}

func readInput(v *viper.Viper) (sales.Input, error) {
	for _, opt := range options {
		if opt.required && !v.IsSet(opt.key) {
			return sales.Input{}, fmt.Errorf("missing required option --%s", opt.flag)
		}
	}

	var (
		in  sales.Input
		err error
	)
	in.Address = v.GetString("address")
	in.PurchaseDate = v.GetString("purchase_date")
	in.SaleDate = v.GetString("sale_date")
	in.Description = v.GetString("description")

	if in.Area, err = floatOption(v, "area"); err != nil {
		return sales.Input{}, err
	}
	if in.Rooms, err = intOption(v, "rooms"); err != nil {
		return sales.Input{}, err
	}
	if in.Floor, err = intOption(v, "floor"); err != nil {
		return sales.Input{}, err
	}
	if in.PurchasePrice, err = floatOption(v, "purchase_price"); err != nil {
		return sales.Input{}, err
	}
	if in.SalePrice, err = floatOption(v, "sale_price"); err != nil {
		return sales.Input{}, err
	}
	if in.MonthlyFee, err = optionalFloat(v, "monthly_fee"); err != nil {
		return sales.Input{}, err
	}
	if in.RenovationCosts, err = optionalFloat(v, "renovation_costs"); err != nil {
		return sales.Input{}, err
	}
	if in.BrokerFeePercent, err = optionalFloat(v, "broker_fee_percent"); err != nil {
		return sales.Input{}, err
	}
	if in.NoBrokerFee, err = cast.ToBoolE(v.Get("no_broker_fee")); err != nil {
		return sales.Input{}, &sales.FieldError{Field: "no_broker_fee", Message: "must be true or false"}
	}
	return in, nil
}

func floatOption(v *viper.Viper, key string) (float64, error) {
	f, err := cast.ToFloat64E(v.Get(key))
	if err != nil {
		return 0, &sales.FieldError{Field: key, Message: fmt.Sprintf("invalid number %q", v.GetString(key))}
	}
	return f, nil
}

func intOption(v *viper.Viper, key string) (int, error) {
	i, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, &sales.FieldError{Field: key, Message: fmt.Sprintf("invalid integer %q", v.GetString(key))}
	}
	return i, nil
}

func optionalFloat(v *viper.Viper, key string) (*float64, error) {
	if !v.IsSet(key) {
		return nil, nil
	}
	f, err := floatOption(v, key)
	if err != nil {
		return nil, err
	}
	return sales.Float(f), nil
}

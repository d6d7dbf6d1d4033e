package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/leverage"
	"github.com/etnz/leverage/date"
	"github.com/google/subcommands"
)

type addAssetCmd struct {
	id           string
	name         string
	typ          string
	value        string
	cost         string
	dividend     string
	annual       string
	purchaseDate string
	loan         string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add an asset, optionally financed by a loan" }
func (*addAssetCmd) Usage() string {
	return `lev add-asset -name <name> -type <investment|real_estate|cash> -value <amount> [-cost <amount>] [-loan <amount>]

  Adds an asset to the snapshot. A positive -loan also creates a loan secured
  against it at 3%: a policy loan for an investment, a mortgage otherwise.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Asset id (generated when empty)")
	f.StringVar(&c.name, "name", "", "Asset name")
	f.StringVar(&c.typ, "type", "investment", "Asset type: investment, real_estate or cash")
	f.StringVar(&c.value, "value", "0", "Market value")
	f.StringVar(&c.cost, "cost", "", "Cost (defaults to the market value)")
	f.StringVar(&c.dividend, "dividend", "0", "Dividends already received")
	f.StringVar(&c.annual, "annual-dividend", "0", "Expected yearly dividend")
	f.StringVar(&c.purchaseDate, "purchased", "", "Purchase date, YYYY-MM-DD")
	f.StringVar(&c.loan, "loan", "0", "Initial loan secured against the asset")
}

// asset builds the asset from the flags.
func (c *addAssetCmd) asset() (leverage.Asset, leverage.Money, error) {
	a := leverage.Asset{ID: c.id, Name: strings.TrimSpace(c.name)}
	var err error
	if a.Type, err = leverage.ParseAssetType(c.typ); err != nil {
		return a, leverage.Money{}, err
	}
	if a.MarketValue, err = leverage.ParseMoney(c.value); err != nil {
		return a, leverage.Money{}, fmt.Errorf("-value: %w", err)
	}
	a.Cost = a.MarketValue
	if c.cost != "" {
		if a.Cost, err = leverage.ParseMoney(c.cost); err != nil {
			return a, leverage.Money{}, fmt.Errorf("-cost: %w", err)
		}
	}
	if a.RealizedDividend, err = leverage.ParseMoney(c.dividend); err != nil {
		return a, leverage.Money{}, fmt.Errorf("-dividend: %w", err)
	}
	if a.AnnualDividend, err = leverage.ParseMoney(c.annual); err != nil {
		return a, leverage.Money{}, fmt.Errorf("-annual-dividend: %w", err)
	}
	if a.PurchaseDate, err = date.Parse(c.purchaseDate); err != nil {
		return a, leverage.Money{}, fmt.Errorf("-purchased: %w", err)
	}
	loan, err := leverage.ParseMoney(c.loan)
	if err != nil {
		return a, leverage.Money{}, fmt.Errorf("-loan: %w", err)
	}
	return a, loan, nil
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, loan, err := c.asset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err = s.AddAsset(a, loan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding asset: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveSnapshot(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type setAssetCmd struct {
	id    string
	field string
	value string
}

func (*setAssetCmd) Name() string     { return "set-asset" }
func (*setAssetCmd) Synopsis() string { return "update one field of an asset" }
func (*setAssetCmd) Usage() string {
	return `lev set-asset -id <id> -field <field> -value <value>

  Updates one field of an asset. Fields are: ` + strings.Join(leverage.AssetFields, ", ") + `.
`
}

func (c *setAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Asset id")
	f.StringVar(&c.field, "field", "marketValue", "Field to update")
	f.StringVar(&c.value, "value", "", "New value")
}

func (c *setAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	s, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err = s.UpdateAsset(c.id, c.field, c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating asset: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveSnapshot(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type deleteAssetCmd struct {
	id string
}

func (*deleteAssetCmd) Name() string     { return "delete-asset" }
func (*deleteAssetCmd) Synopsis() string { return "delete an asset and the loans secured against it" }
func (*deleteAssetCmd) Usage() string {
	return `lev delete-asset -id <id>

  Deletes an asset. The loans secured against it are deleted too.
`
}

func (c *deleteAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Asset id")
}

func (c *deleteAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	s, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err = s.DeleteAsset(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting asset: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveSnapshot(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

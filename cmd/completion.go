package cmd

import (
	"flag"

	"github.com/etnz/leverage"
	"github.com/etnz/leverage/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commands registered in c.
// The main package calls its Complete method before parsing the flags.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors("", flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(cmd.Name(), fs)}
		switch cmd.Name() {
		case "import":
			sub.Args = predict.Files("*.json")
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func flagPredictors(command string, fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		flags[f.Name] = flagPredictor(command, f)
	})
	return flags
}

func flagPredictor(command string, f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "data", "o":
		return predict.Files("*.json")
	case "config":
		return predict.Files("*.yaml")
	case "type":
		return predict.Set{"investment", "real_estate", "cash"}
	case "id":
		if command == "set-liability" {
			return complete.PredictFunc(liabilityIDs)
		}
		return complete.PredictFunc(assetIDs)
	case "field":
		switch command {
		case "set-asset":
			return predict.Set(leverage.AssetFields)
		case "set-liability":
			return predict.Set(leverage.LiabilityFields)
		case "set-income":
			return predict.Set(leverage.IncomeExpenseFields)
		}
	}
	return predict.Something
}

func assetIDs(prefix string) []string {
	s, err := loadSnapshot()
	if err != nil {
		return nil
	}
	var ids []string
	for _, a := range s.Assets {
		ids = append(ids, a.ID)
	}
	return ids
}

func liabilityIDs(prefix string) []string {
	s, err := loadSnapshot()
	if err != nil {
		return nil
	}
	var ids []string
	for _, l := range s.Liabilities {
		ids = append(ids, l.ID)
	}
	return ids
}

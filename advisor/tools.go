package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etnz/leverage"
	"google.golang.org/genai"
)

// Evaluator computes the dashboard of the current snapshot under a stress
// scenario.
type Evaluator func(stress leverage.Stress) (*leverage.Dashboard, error)

// NewTools returns the functions exposed to the assistant: "dashboard" under
// the base scenario and "stress_test" under a scenario chosen by the model.
func NewTools(base leverage.Stress, eval Evaluator) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "dashboard",
				Description: `Returns the user's dashboard as JSON under the current stress scenario:
				totals, cash flow, liquidity, allocation, and the risk status of every leveraged position.`,
				Parameters: &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The dashboard as a JSON document.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				return evaluate(id, "dashboard", base, eval)
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "stress_test",
				Description: `Recomputes the user's dashboard under a hypothetical scenario and returns it as JSON.
				Use it to explore what a market crash or an interest rate hike would do to the positions.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"crash": {
							Type:        genai.TypeNumber,
							Description: fmt.Sprintf("Market crash applied to investments, as a fraction between 0 and %s (0.2 is a 20%% drop).", leverage.MaxMarketCrash),
						},
						"hike": {
							Type:        genai.TypeNumber,
							Description: fmt.Sprintf("Interest rate hike, as a fraction between 0 and %s (0.01 is +1%%).", leverage.MaxInterestHike),
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The stressed dashboard as a JSON document.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				stress, err := parseStress(args)
				if err != nil {
					return errorResponse(id, "stress_test", err)
				}
				return evaluate(id, "stress_test", stress, eval)
			},
		},
	}
}

func evaluate(id, name string, stress leverage.Stress, eval Evaluator) *genai.FunctionResponse {
	d, err := eval(stress)
	if err != nil {
		return errorResponse(id, name, err)
	}
	data, err := json.Marshal(d)
	if err != nil {
		return errorResponse(id, name, err)
	}
	return outputResponse(id, name, string(data))
}

// parseStress reads the optional "crash" and "hike" arguments.
func parseStress(args map[string]any) (leverage.Stress, error) {
	var s leverage.Stress
	for name, dst := range map[string]*leverage.Ratio{"crash": &s.MarketCrash, "hike": &s.InterestHike} {
		v, ok := args[name]
		if !ok {
			continue
		}
		f, ok := v.(float64)
		if !ok {
			return s, fmt.Errorf("argument %q is not a number but %T", name, v)
		}
		*dst = leverage.R(f)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

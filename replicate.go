// replicate.go
//
// Things for calling Replicate models and normalizing their outputs.

package main

import (
	"context"
	"fmt"

	"github.com/replicate/replicate-go"
	"github.com/samber/lo"
)

// max length of prompts quoted in error messages
const promptErrorLength = 80

// modelRunner is the narrow surface of the Replicate client used here.
type modelRunner interface {
	Run(
		ctx context.Context,
		identifier string,
		input replicate.PredictionInput,
		webhook *replicate.Webhook,
	) (replicate.PredictionOutput, error)
}

// generate a Replicate client with given token
func newReplicateClient(token string) (modelRunner, error) {
	return replicate.NewClient(replicate.WithToken(token))
}

// run given model once and normalize its output to a list of strings
//
// Failures of the remote call are wrapped with the model identifier and a
// truncated prompt; they are never retried here.
func invokeImageModel(
	ctx context.Context,
	runner modelRunner,
	model string,
	input replicate.PredictionInput,
) ([]string, error) {
	if runner == nil {
		return nil, fmt.Errorf("replicate API token is not configured; set $%s", envVarNameAPIToken)
	}

	output, err := runner.Run(ctx, model, input, nil)
	if err != nil {
		prompt, _ := input["prompt"].(string)
		return nil, fmt.Errorf(
			"failed to run model '%s' (prompt: '%s'): %w",
			model,
			truncate(prompt, promptErrorLength),
			err,
		)
	}

	return normalizeModelOutput(output), nil
}

// normalize model output
//
// A sequence becomes its stringified elements in order, a single scalar
// becomes a one-element list, and absence becomes an empty list.
func normalizeModelOutput(output replicate.PredictionOutput) []string {
	switch v := output.(type) {
	case nil:
		return []string{}
	case []any:
		return lo.Map(v, func(element any, _ int) string {
			return stringifyOutput(element)
		})
	default:
		return []string{stringifyOutput(v)}
	}
}

// stringify a single output element
func stringifyOutput(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// build the input mapping for `generate_image`
func generationInput(
	prompt string,
	numOutputs int,
	aspectRatio string,
	quality string,
) replicate.PredictionInput {
	return replicate.PredictionInput{
		"prompt":       prompt,
		"aspect_ratio": aspectRatio,
		"num_outputs":  numOutputs,
		"quality":      quality,
	}
}

// build the input mapping for `edit_image` with the resolved image reference
func editInput(
	prompt string,
	imageReference string,
	numOutputs int,
	aspectRatio string,
	quality string,
) replicate.PredictionInput {
	input := generationInput(prompt, numOutputs, aspectRatio, quality)
	input["image"] = imageReference

	return input
}

package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeImageModel(t *testing.T) {
	ctx := context.Background()

	t.Run("a sequence output keeps its order", func(t *testing.T) {
		runner := &mockRunner{output: []any{"u1", "u2"}}

		images, err := invokeImageModel(ctx, runner, "model-x", generationInput("cat", 2, "1:1", "low"))

		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, images)
		assert.Equal(t, "model-x", runner.lastModel)
		assert.Equal(t, 2, runner.lastInput["num_outputs"])
	})

	t.Run("a scalar output becomes a one-element list", func(t *testing.T) {
		runner := &mockRunner{output: "u1"}

		images, err := invokeImageModel(ctx, runner, "model-x", generationInput("cat", 1, "1:1", "low"))

		require.NoError(t, err)
		assert.Equal(t, []string{"u1"}, images)
	})

	t.Run("an absent output becomes an empty list", func(t *testing.T) {
		runner := &mockRunner{output: nil}

		images, err := invokeImageModel(ctx, runner, "model-x", generationInput("cat", 1, "1:1", "low"))

		require.NoError(t, err)
		require.NotNil(t, images)
		assert.Empty(t, images)
	})

	t.Run("non-string sequence elements are stringified", func(t *testing.T) {
		runner := &mockRunner{output: []any{"u1", 42}}

		images, err := invokeImageModel(ctx, runner, "model-x", generationInput("cat", 2, "1:1", "low"))

		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "42"}, images)
	})

	t.Run("a remote failure is wrapped with model and truncated prompt", func(t *testing.T) {
		cause := errors.New("model is booting")
		runner := &mockRunner{err: cause}

		longPrompt := "a very long prompt " + strings.Repeat("x", 200)
		_, err := invokeImageModel(ctx, runner, "model-x", generationInput(longPrompt, 1, "1:1", "low"))

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "model-x")
		assert.Contains(t, err.Error(), "...") // prompt was truncated
	})

	t.Run("a missing client fails without a remote call", func(t *testing.T) {
		_, err := invokeImageModel(ctx, nil, "model-x", generationInput("cat", 1, "1:1", "low"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), envVarNameAPIToken)
	})
}

func TestInputBuilders(t *testing.T) {
	t.Run("generation input carries prompt, count, aspect ratio, and quality", func(t *testing.T) {
		input := generationInput("a red cube", 3, "16:9", "low")

		assert.Equal(t, "a red cube", input["prompt"])
		assert.Equal(t, 3, input["num_outputs"])
		assert.Equal(t, "16:9", input["aspect_ratio"])
		assert.Equal(t, "low", input["quality"])
		assert.NotContains(t, input, "image")
	})

	t.Run("edit input additionally carries the resolved image", func(t *testing.T) {
		input := editInput("make it winter", "https://replicate.delivery/pbxt/abc/out-0.png", 1, "1:1", "low")

		assert.Equal(t, "https://replicate.delivery/pbxt/abc/out-0.png", input["image"])
		assert.Equal(t, "make it winter", input["prompt"])
	})
}

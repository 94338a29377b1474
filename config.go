// config.go
//
// things for configurations

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	infisical "github.com/infisical/go-sdk"
	"github.com/infisical/go-sdk/packages/models"
)

const (
	appName = `rmn`

	defaultConfigFilename = `config.json`

	defaultTimeoutSeconds = 300

	// defaults for the resolver-enabled tool pair
	defaultGenerationModel       = `openai/gpt-image-1.5`
	defaultEditModel             = `openai/gpt-image-1.5`
	defaultGenerationAspectRatio = `1:1`
	defaultEditAspectRatio       = `1:1`
	defaultOutputQuality         = `low`
)

// environment variable names
const (
	// Replicate API token; its absence is a startup warning, not a failure
	envVarNameAPIToken = `REPLICATE_API_TOKEN`

	// comma-separated list of recently generated image URLs,
	// declaration order, last entry = most recent
	envVarNameRecentImages = `REPLICATE_RECENT_IMAGES`
)

// config struct
type config struct {
	ReplicateAPIToken *string           `json:"replicate_api_token,omitempty"`
	Infisical         *infisicalSetting `json:"infisical,omitempty"`

	GenerationModel       *string `json:"generation_model,omitempty"`
	EditModel             *string `json:"edit_model,omitempty"`
	GenerationAspectRatio *string `json:"generation_aspect_ratio,omitempty"`
	EditAspectRatio       *string `json:"edit_aspect_ratio,omitempty"`
	OutputQuality         *string `json:"output_quality,omitempty"`

	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// infisical setting struct
type infisicalSetting struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`

	ProjectID   string `json:"project_id"`
	Environment string `json:"environment"`
	SecretType  string `json:"secret_type"`

	ReplicateAPITokenKeyPath string `json:"replicate_api_token_key_path"`
}

// read config from given filepath
func readConfig(configFilepath string) (conf config, err error) {
	var bytes []byte
	if bytes, err = os.ReadFile(configFilepath); err == nil {
		if bytes, err = standardizeJSON(bytes); err == nil {
			if err = json.Unmarshal(bytes, &conf); err == nil {
				// set default values
				if conf.TimeoutSeconds <= 0 {
					conf.TimeoutSeconds = defaultTimeoutSeconds
				}

				if conf.ReplicateAPIToken == nil && conf.Infisical != nil {
					// read the token from infisical
					client := infisical.NewInfisicalClient(context.TODO(), infisical.Config{
						SiteUrl: "https://app.infisical.com",
					})

					_, err = client.Auth().UniversalAuthLogin(conf.Infisical.ClientID, conf.Infisical.ClientSecret)
					if err != nil {
						return config{}, fmt.Errorf("failed to authenticate with Infisical: %w", err)
					}

					var keyPath string
					var secret models.Secret

					// replicate api token
					keyPath = conf.Infisical.ReplicateAPITokenKeyPath
					secret, err = client.Secrets().Retrieve(infisical.RetrieveSecretOptions{
						ProjectID:   conf.Infisical.ProjectID,
						Type:        conf.Infisical.SecretType,
						Environment: conf.Infisical.Environment,
						SecretPath:  path.Dir(keyPath),
						SecretKey:   path.Base(keyPath),
					})
					if err == nil {
						val := secret.SecretValue
						conf.ReplicateAPIToken = &val
					} else {
						return config{}, fmt.Errorf("failed to retrieve `replicate_api_token` from Infisical: %w", err)
					}
				}

				return conf, nil
			}
		}
	}

	return conf, err
}

// resolve config filepath
func resolveConfigFilepath(configFilepath *string) string {
	if configFilepath != nil {
		return *configFilepath
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome != "" {
		return filepath.Join(configHome, appName, defaultConfigFilename)
	}

	return filepath.Join(os.Getenv("HOME"), ".config", appName, defaultConfigFilename)
}

// model for `generate_image` when the call does not name one
func (c config) generationModel() string {
	if c.GenerationModel != nil {
		return *c.GenerationModel
	}
	return defaultGenerationModel
}

// model for `edit_image` when the call does not name one
func (c config) editModel() string {
	if c.EditModel != nil {
		return *c.EditModel
	}
	return defaultEditModel
}

// aspect ratio for generations
func (c config) generationAspectRatio() string {
	if c.GenerationAspectRatio != nil {
		return *c.GenerationAspectRatio
	}
	return defaultGenerationAspectRatio
}

// aspect ratio for edits
func (c config) editAspectRatio() string {
	if c.EditAspectRatio != nil {
		return *c.EditAspectRatio
	}
	return defaultEditAspectRatio
}

// quality hint passed to models
func (c config) outputQuality() string {
	if c.OutputQuality != nil {
		return *c.OutputQuality
	}
	return defaultOutputQuality
}

// read the fallback image list from the environment
//
// Read fresh on every call; there is no cross-call state beyond this.
func recentImagesFromEnv() string {
	return os.Getenv(envVarNameRecentImages)
}

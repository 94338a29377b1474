// params.go
//
// input parameters from command line and their helper functions

package main

// parameter definitions
type params struct {
	// for showing the version
	ShowVersion bool `long:"version" description:"Show the version of this application"`

	Configuration struct {
		// configuration file's path
		ConfigFilepath *string `short:"c" long:"config" description:"Config file's path (default: $XDG_CONFIG_HOME/rmn/config.json)"`

		// for the Replicate API
		ReplicateAPIToken *string `short:"t" long:"api-token" description:"Replicate API token (can be omitted if set in config or $REPLICATE_API_TOKEN)"`
	} `group:"Configuration"`

	Generation struct {
		// default models for the image tools
		GenerationModel *string `short:"m" long:"generation-model" description:"Default model for 'generate_image' (can be omitted)"`
		EditModel       *string `long:"edit-model" description:"Default model for 'edit_image' (can be omitted)"`
	} `group:"Generation"`

	Serving struct {
		// for serving over streamable HTTP instead of STDIO
		ServeHTTP bool   `long:"http" description:"Serve over streamable HTTP instead of STDIO"`
		HTTPAddr  string `long:"addr" default:"localhost:8000" description:"Address to bind to when serving over HTTP"`
	} `group:"Serving"`

	// for logging and debugging
	Verbose []bool `short:"v" long:"verbose" description:"Show verbose logs (can be used multiple times)"`
}

// redact params for printing to logs
func (p *params) redact() params {
	copied := *p
	if copied.Configuration.ReplicateAPIToken != nil {
		copied.Configuration.ReplicateAPIToken = ptr("REDACTED")
	}
	return copied
}

// Package cli implements the hrmockd command-line interface.
//
// Commands:
//
//	serve    Generate the dataset and serve the HR mock API (default)
//	export   Print one generated collection as JSON or YAML
//	version  Show build information
package cli

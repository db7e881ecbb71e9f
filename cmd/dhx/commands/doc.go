// Package commands defines the dhx CLI.
//
// Commands
//
//   - serve      Run the key exchange responder
//   - connect    Dial a responder and establish a shared secret
//   - genparams  Generate and print group parameters
//
// # Implementation
//
// The root command loads the YAML config and builds the logger before
// any subcommand runs; subcommand flags override config file values.
package commands

// credctl encodes and decodes session cookie values and builds backend
// Authorization headers, for debugging a running dashboard by hand.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/klwxsrx/store-dashboard/pkg/credential"
)

const usage = `Usage: credctl <command> [flags] [value]

Commands:
  encode   obfuscate a plaintext credential into a cookie value
  decode   recover the plaintext of a cookie value
  header   build the backend Authorization header

The value is read from stdin when omitted.
`

var errUsage = errors.New("invalid usage")

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch command, rest := args[0], args[1:]; command {
	case "encode", "decode":
		return runCodec(command, rest, stdin, stdout, stderr)
	case "header":
		return runHeader(rest, stdout, stderr)
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func runCodec(command string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var key string
	flagSet := pflag.NewFlagSet("credctl "+command, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&key, "key", "", "codec key, the built-in key when empty")
	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	codec := credential.DefaultCodec()
	if key != "" {
		var err error
		codec, err = credential.NewCodec([]byte(key))
		if err != nil {
			return err
		}
	}

	value, err := readValue(flagSet.Args(), stdin)
	if err != nil {
		return err
	}

	if command == "encode" {
		fmt.Fprintln(stdout, codec.Encode(value))
		return nil
	}

	plain, err := codec.Decode(strings.TrimSpace(value))
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, plain)
	return nil
}

func runHeader(args []string, stdout, stderr io.Writer) error {
	var opName, secret, loginToken string
	var strict bool
	flagSet := pflag.NewFlagSet("credctl header", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opName, "op", "read", "operation: read or write")
	flagSet.StringVar(&secret, "secret", "", "backend secret of the operation")
	flagSet.StringVar(&loginToken, "login-token", "", "login token of the session")
	flagSet.BoolVar(&strict, "strict", false, "fail on an empty login token")
	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	var op credential.Operation
	switch opName {
	case "read":
		op = credential.OperationRead
	case "write":
		op = credential.OperationWrite
	default:
		return fmt.Errorf("%w: unknown operation %q", errUsage, opName)
	}

	authorization := credential.Authorization(op, secret, loginToken)
	if strict {
		var err error
		authorization, err = credential.StrictAuthorization(op, secret, loginToken)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, credential.HeaderValue(authorization))
	return nil
}

func readValue(args []string, stdin io.Reader) (string, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected a single value", errUsage)
	}
}

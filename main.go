package main

import (
	"fmt"
	"io"
	"os"

	"tasnim.dev/aws-reports/cmd"
	awsclient "tasnim.dev/aws-reports/internal/aws"
	"tasnim.dev/aws-reports/internal/log"
)

const accessDeniedHint = "Hint: the credentials in use are not allowed to make this call; check the IAM policy attached to the selected profile."

func main() {
	log.InitLogger()

	if err := cmd.NewRootCmd(nil).Execute(); err != nil {
		log.WithError(err).Debug("command failed")
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", awsclient.DescribeError(err))
	if awsclient.IsAccessDenied(err) {
		fmt.Fprintln(w, accessDeniedHint)
	}
}

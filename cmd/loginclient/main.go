package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/taekwondodev/go-role-login/client"
)

func main() {
	server := pflag.StringP("server", "s", "http://localhost:8080", "login server base URL")
	username := pflag.StringP("username", "u", "", "username")
	password := pflag.StringP("password", "p", "", "password")
	follow := pflag.Bool("follow", false, "request the dashboard after a successful login")
	pflag.Parse()

	if err := run(*server, *username, *password, *follow, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(server, username, password string, follow bool, out io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(server, nil)

	res, err := c.Login(ctx, username, password)
	if err != nil {
		var loginErr *client.LoginError
		if errors.As(err, &loginErr) {
			return errors.New(loginErr.Message)
		}
		return err
	}

	fmt.Fprintf(out, "%s, redirecting to %s\n", res.Message, res.Destination)
	if !follow {
		return nil
	}

	resp, err := c.Follow(ctx, res)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"go.chizhov.dev/greet/cli"
	"go.chizhov.dev/greet/greeting"
	"go.chizhov.dev/greet/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	greeting string
	name     string
	config   string
	plain    bool
	verbose  bool

	flags *flag.FlagSet
}

func (a *app) Flags(f *flag.FlagSet) {
	a.flags = f
	f.StringVar(&a.greeting, "greeting", "", "Greeting `word` to print instead of the configured one.")
	f.StringVar(&a.name, "name", "", "Subject `name` to address instead of the configured one.")
	f.StringVar(&a.config, "config", "", "Path to a TOML configuration `file` with greeting and name keys.")
	f.BoolVar(&a.plain, "plain", false, "Print without the background highlight.")
	f.BoolVar(&a.verbose, "verbose", false, "Log how the greeting was resolved.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if a.verbose {
		log := logger.New(nil)
		log.Level.Set(slog.LevelDebug)
		log.Attach(tint.NewHandler(env.Stderr, &tint.Options{Level: log.Level}))
		ctx = logger.Put(ctx, log)
	}

	msg, err := a.resolve(ctx, env)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "printing greeting",
		slog.String("greeting", msg.Greeting),
		slog.String("name", msg.Name),
		slog.Bool("styled", a.styled(env)))

	return greeting.Fprintln(env.Stdout, msg, a.styled(env))
}

// resolve builds the message to print. Later sources win: defaults, then
// environment variables, then the configuration file, then explicit flags.
// A flag explicitly set to the empty string is honored as empty.
func (a *app) resolve(ctx context.Context, env *cli.Env) (greeting.Message, error) {
	msg := greeting.Default()

	if v := env.Getenv("GREET_GREETING"); v != "" {
		msg.Greeting = v
		logger.Debug(ctx, "greeting from environment", slog.String("greeting", v))
	}
	if v := env.Getenv("GREET_NAME"); v != "" {
		msg.Name = v
		logger.Debug(ctx, "name from environment", slog.String("name", v))
	}

	path := a.config
	if path == "" {
		if _, err := os.Stat(greeting.ConfigFile); err == nil {
			path = greeting.ConfigFile
		}
	}
	if path != "" {
		loaded, err := greeting.LoadFile(path, msg)
		if err != nil {
			return greeting.Message{}, err
		}
		msg = loaded
		logger.Debug(ctx, "loaded configuration", slog.String("path", path))
	}

	a.flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "greeting":
			msg.Greeting = a.greeting
		case "name":
			msg.Name = a.name
		}
	})

	return msg, nil
}

func (a *app) styled(env *cli.Env) bool {
	if a.plain || env.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := env.Stdout.(*os.File)
	return ok && cli.IsTerminal(int(f.Fd()))
}

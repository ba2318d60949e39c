/*
 Copyright (C) 2024 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// A two-phase revised Simplex solver for linear programs in the text
// format read by simplex.LoadFile.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dpotter-lab/simplex"
	"github.com/dpotter-lab/simplex/internal/field"
	"github.com/dpotter-lab/simplex/internal/util"
)

func main() {
	flags := util.NewFlagSet(`Usage: %s -instance instance.lp

%s reads in an LP instance file, solves it and prints the optimum value
to standard out.

Arguments:
`)
	filename := flags.String("instance", "", "instance filename, in the LP text format")
	rational := flags.Bool("rational", false, "use exact rational arithmetic instead of float64")
	logLevel := flags.String("logLevel", "Info", "log level (Debug, Info, Warn, Error)")
	flags.Parse()

	level := parseLogLevel(*logLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})))

	if *filename == "" {
		fmt.Fprintln(os.Stderr, "Please supply the instance file name")
		os.Exit(1)
	}

	var f field.Field = field.Float64Field{}
	if *rational {
		f = field.RationalField{}
	}

	sys, err := simplex.LoadFile(*filename, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load instance due to error: %s\n", err)
		os.Exit(1)
	}
	if sys == nil {
		fmt.Println("infeasible")
		return
	}

	value, err := simplex.Solve(sys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to solve instance due to error: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("optimum: %s\n", value)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "Debug":
		return slog.LevelDebug
	case "Info":
		return slog.LevelInfo
	case "Warn":
		return slog.LevelWarn
	case "Error":
		return slog.LevelError
	}
	slog.Error("unknown log level. defaulting to Info")
	return slog.LevelInfo
}

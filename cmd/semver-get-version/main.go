// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"

	"github.com/bborbe/auto-semver/pkg/cli"
	"github.com/bborbe/auto-semver/pkg/factory"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	command := cli.NewGetVersionCommand(version, ".", os.Stdout, factory.CreateGetVersionCommand)
	os.Exit(cli.Execute(context.Background(), command, os.Args[1:], os.Stderr))
}

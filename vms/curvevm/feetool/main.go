// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/luxfi/bondingcurve/vms/curvevm/cmd/feetool"
)

func main() {
	if err := feetool.Command().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "feetool: %s\n", err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/waborder/nifpga-go/pkg/nifpga"
	"github.com/waborder/nifpga-go/pkg/nifpga/mockfpga"
)

func main() {
	mock := flag.Bool("mock", false, "bind against the in-memory simulated driver instead of NiFpga")
	flag.Parse()

	log.Printf("nifpga-go version: %s", nifpga.WrapperVersion())

	var lib *nifpga.Library
	var err error
	if *mock {
		lib, err = nifpga.OpenWith(nifpga.Config{LibraryName: nifpga.DriverLibraryName}, mockfpga.New(), nifpga.DriverFunctions())
	} else {
		lib, err = nifpga.OpenDriver(nifpga.Config{})
	}
	if err != nil {
		if errors.Is(err, nifpga.ErrLibraryNotFound) || errors.Is(err, nifpga.ErrUnsupportedPlatform) {
			fmt.Printf("driver unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure opening driver: %v", err)
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	fmt.Printf("%s bound: %d functions\n", lib.Name(), len(lib.Functions()))
}

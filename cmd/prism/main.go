// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/prism/asm"
	"github.com/ezrec/prism/opcode"
	"github.com/ezrec/prism/script"
)

func main() {
	var compile string
	var registry string
	var output string
	var listing bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".star program to compile")
	flag.StringVar(&registry, "r", "", ".toml opcode registry to use")
	flag.StringVar(&output, "o", "-", "Binary output")
	flag.BoolVar(&listing, "l", false, "Log a listing of the program")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: No program given, use -c", os.Args[0])
	}

	enc := &asm.Encoder{Verbose: verbose}

	if len(registry) != 0 {
		inf, err := os.Open(registry)
		if err != nil {
			log.Fatalf("%v: %v", registry, err)
		}
		table, err := opcode.LoadTable(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", registry, err)
		}
		enc.Registry = table
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	builder := &script.Builder{Verbose: verbose}
	prog, err := builder.Compile(compile, inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = prog.Check()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if listing {
		for offset, ins := range prog.Codes() {
			log.Printf("%04x: %-18v %v", offset, fmt.Sprintf("% x", enc.Encode(ins)), ins)
		}
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	_, err = ouf.Write(prog.Binary(enc))
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/icvm/cpu"
	"github.com/ezrec/icvm/device"
)

func main() {
	var compile string
	var disasm bool
	var inputs string
	var pokes string
	var ascii bool
	var verbose bool

	flag.StringVar(&compile, "c", "", "assembler source file to assemble")
	flag.BoolVar(&disasm, "d", false, "disassemble the image, do not execute")
	flag.StringVar(&inputs, "i", "", "comma-separated input values to queue")
	flag.StringVar(&pokes, "p", "", "comma-separated addr=value memory patches")
	flag.BoolVar(&ascii, "a", false, "drive the program as an interactive ASCII console")
	flag.BoolVar(&verbose, "v", false, "verbose execution trace")

	flag.Parse()

	var image []int64
	var err error

	switch {
	case len(compile) != 0:
		if flag.NArg() != 0 {
			log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
		}
		var inf *os.File
		inf, err = os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		image, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case flag.NArg() == 1:
		image, err = cpu.LoadProgram(flag.Arg(0))
		if err != nil {
			log.Fatalf("%v: %v", flag.Arg(0), err)
		}
	default:
		log.Fatalf("usage: %v [-c source | image] [options]", os.Args[0])
	}

	if disasm {
		err = cpu.Disassemble(image, os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	machine := cpu.NewCpu(image)
	if verbose {
		machine.Trace = &cpu.Tracer{Output: os.Stderr}
	}

	for _, patch := range fields(pokes) {
		addr, value, ok := strings.Cut(patch, "=")
		if !ok {
			log.Fatalf("bad patch %q: want addr=value", patch)
		}
		err = machine.Poke(number(addr), number(value))
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, value := range fields(inputs) {
		machine.SendInput(number(value))
	}

	if ascii {
		console := &device.Console{
			Cpu:    machine,
			Input:  os.Stdin,
			Output: os.Stdout,
		}
		err = console.Run()
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	state, err := machine.Run()
	if err != nil {
		log.Fatal(err)
	}
	for _, value := range machine.ConsumeOutputAll() {
		fmt.Println(value)
	}
	if state == cpu.STATE_WAIT_IO {
		log.Fatalf("program wants more input than -i supplied")
	}
}

// fields splits a comma-separated flag value, tolerating an empty flag.
func fields(flagval string) (parts []string) {
	if len(flagval) == 0 {
		return
	}

	return strings.Split(flagval, ",")
}

// number parses a decimal flag component.
func number(text string) (value int64) {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		log.Fatalf("bad number %q", text)
	}

	return
}

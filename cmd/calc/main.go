package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wittyparth/calc"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")
	var echo bool
	flag.BoolVar(&echo, "echo", false, "print the parse tree before the result")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	a, err := calc.Parse(strings.NewReader(flag.Arg(0)))
	if err != nil {
		log.Fatal(err)
	}
	if echo {
		fmt.Printf("%v : ", a)
	}
	r, err := a.Eval()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%g\n", r)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-echo] 'expression'\n", os.Args[0])
	flag.PrintDefaults()
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"lispcalc"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var dump = flag.Bool("dump", false, "print the parsed tree for each line")

func run(r io.Reader, prompt bool) {
	scanner := bufio.NewScanner(r)
	for {
		if prompt {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		expr, err := lispcalc.Parse(line)
		if err != nil {
			color.Red("error: %v", err)
			continue
		}
		if *dump {
			repr.Println(expr)
		}
		env := lispcalc.NewEnv()
		ret, err := lispcalc.Eval(expr, env)
		if err != nil {
			color.Red("error: %v", err)
			continue
		}
		fmt.Printf("%s = %s\n", expr.Render(env), ret)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	var f *os.File
	var err error

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			run(os.Stdin, true)
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if *dump {
		run(f, false)
		return
	}
	if err := lispcalc.Run(f, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

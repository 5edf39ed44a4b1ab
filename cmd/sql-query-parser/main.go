// Command sql-query-parser parses SQL queries and prints their parse tree or
// extracted metadata.
//
// Usage:
//
//	sql-query-parser parse [-q query] [-f file] [-format parse|analyze|json]
//	sql-query-parser help
//	sql-query-parser credits
//
// When neither -q nor -f is given, the query is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Lialoonk/sql-query-parser/analyzer"
	"github.com/Lialoonk/sql-query-parser/internal/explain"
	"github.com/Lialoonk/sql-query-parser/logger"
	"github.com/Lialoonk/sql-query-parser/parser"
)

const version = "0.1.0"

func main() {
	log := logger.New(logger.LoadConfig())

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "parse":
		runParse(log, os.Args[2:])
	case "help":
		printHelp()
	case "credits":
		printCredits()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", os.Args[1])
		printHelp()
		os.Exit(2)
	}
}

func runParse(log *slog.Logger, args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var query, file, format string
	fs.StringVar(&query, "query", "", "SQL query to parse")
	fs.StringVar(&query, "q", "", "SQL query to parse (shorthand)")
	fs.StringVar(&file, "file", "", "read SQL query from file")
	fs.StringVar(&file, "f", "", "read SQL query from file (shorthand)")
	fs.StringVar(&format, "format", "parse", "output format: parse, analyze, or json")
	fs.Parse(args)

	input, err := readQuery(query, file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(os.Stderr, "Error: no SQL query provided. Use -q, -f, or pipe input.")
		os.Exit(1)
	}

	log.Debug("parsing query", "bytes", len(input), "format", format)

	switch format {
	case "parse":
		tree, err := parser.Parse(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to parse SQL query:", err)
			os.Exit(1)
		}
		fmt.Println("Parse tree:")
		fmt.Print(explain.Tree(tree))
	case "analyze":
		meta, err := analyzer.Analyze(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to analyze SQL query:", err)
			os.Exit(1)
		}
		printMetadata(meta)
	case "json":
		out, err := analyzer.AnalyzeJSON(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to generate JSON:", err)
			os.Exit(1)
		}
		fmt.Println(out)
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid format %q. Use parse, analyze, or json.\n", format)
		os.Exit(1)
	}
}

// readQuery resolves the query text from -q, -f, or stdin. The two flags are
// mutually exclusive.
func readQuery(query, file string) (string, error) {
	switch {
	case query != "" && file != "":
		return "", fmt.Errorf("cannot specify both -q and -f")
	case query != "":
		return query, nil
	case file != "":
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading file %q: %w", file, err)
		}
		return string(content), nil
	default:
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading from stdin: %w", err)
		}
		return strings.TrimSpace(string(content)), nil
	}
}

func printMetadata(meta *analyzer.QueryMetadata) {
	fmt.Println("SQL Query Analysis:")
	fmt.Println("Tables:", meta.Tables.Values())
	fmt.Println("Columns:", meta.Columns.Values())
	fmt.Println("Aliases:", meta.Aliases)
	fmt.Println("Functions:", meta.Functions.Values())
	fmt.Println("Aggregates:", meta.Aggregates.Values())
	fmt.Println("Joins:", meta.Joins)
}

func printHelp() {
	fmt.Printf("sql-query-parser v%s\n", version)
	fmt.Println("Parse and analyze SQL queries with metadata extraction.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    sql-query-parser <command>")
	fmt.Println()
	fmt.Println("COMMANDS:")
	fmt.Println("    parse    Parse a SQL query and display results")
	fmt.Println("    help     Display this help information")
	fmt.Println("    credits  Display credits and project information")
	fmt.Println()
	fmt.Println("PARSE OPTIONS:")
	fmt.Println("    -q, -query <QUERY>   SQL query to parse")
	fmt.Println("    -f, -file <FILE>     Read SQL query from file")
	fmt.Println("    -format <FORMAT>     Output format: parse, analyze, or json (default: parse)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("    sql-query-parser parse -q \"SELECT * FROM users\"")
	fmt.Println("    sql-query-parser parse -f query.sql -format analyze")
	fmt.Println("    echo \"SELECT * FROM users\" | sql-query-parser parse -format json")
}

func printCredits() {
	fmt.Printf("sql-query-parser v%s\n", version)
	fmt.Println()
	fmt.Println("A SQL parsing and analysis tool.")
	fmt.Println()
	fmt.Println("FEATURES:")
	fmt.Println("    SQL syntax parsing (SELECT, INSERT, UPDATE, DELETE)")
	fmt.Println("    JOIN operations support")
	fmt.Println("    Metadata extraction (tables, columns, functions, aliases)")
	fmt.Println("    JSON serialization of analysis results")
	fmt.Println("    File and stdin input support")
}

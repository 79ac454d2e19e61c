package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wechat <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  copy       Copy an article as inline-styled HTML for the WeChat editor")
	fmt.Fprintln(w, "  preview    Write the themed preview page to an HTML file")
	fmt.Fprintln(w, "  themes     List available themes")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  doctor     Check Chrome, clipboard and environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'md2wechat article.md' is short for 'md2wechat copy article.md'.")
	fmt.Fprintln(w, "Run 'md2wechat help <command>' for details on a specific command.")
}

// printStyleFlags prints the flags shared by copy and preview.
func printStyleFlags(w io.Writer) {
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -t, --theme <s>           Theme name, CSS file, or CSS text (default wechat)")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file appended after the theme")
	fmt.Fprintln(w, "      --highlight <s>       Chroma style for code blocks (default github)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with themes/ and templates/ overrides")
	fmt.Fprintln(w, "      --no-hard-wraps       Keep single newlines inside paragraphs")
}

// printCommonFlags prints the flags every command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printCopyUsage prints usage for the copy command.
func printCopyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wechat copy <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a Markdown article, inline its computed styles and copy it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Target:")
	fmt.Fprintln(w, "      --to <s>              clipboard, stdout, file, chrome (default clipboard)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (implies --to file)")
	fmt.Fprintln(w, "      --simulate            Print the HTML the editor keeps after paste")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export:")
	fmt.Fprintln(w, "      --timeout <d>         Export timeout, e.g. 30s, 1m")
	fmt.Fprintln(w, "      --padding <s>         Wrapper padding when the theme sets none (default 20px)")
	fmt.Fprintln(w)
	printStyleFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wechat preview <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the themed preview page, stylesheet embedded, to an HTML file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       HTML file, - for stdout (default: input with .html)")
	fmt.Fprintln(w)
	printStyleFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "copy":
		printCopyUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "themes":
		fmt.Fprintln(env.Stdout, "Usage: md2wechat themes [--asset-path <dir>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List available themes. The default theme is marked with *.")
	case "config":
		fmt.Fprintln(env.Stdout, "Usage: md2wechat config [-c <name>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the effective configuration as YAML.")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: md2wechat doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome, the system clipboard and the environment.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2wechat version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2wechat help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

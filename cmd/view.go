package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mabhi256/jclassdump/internal/browser"
	"github.com/mabhi256/jclassdump/internal/classfile/parser"
	"github.com/mabhi256/jclassdump/utils"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [class-file]",
	Short: `Open an interactive terminal browser over a decoded .class file`,
	Long: `View decodes a Java .class file and opens a tabbed terminal browser
over it:
- Overview: class identity, version, access flags, attribute frequency
- Constant Pool: every resolved entry
- Fields / Methods: selectable lists with descriptors and access flags
- Bytecode: disassembly of the selected method's Code attribute`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".class"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		if ext := filepath.Ext(filename); ext != ".class" {
			fmt.Printf("Warning: file extension %q is not .class, but proceeding anyway...\n", ext)
		}

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}

		cf, err := parser.Parse(data)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", filename, err)
		}

		if err := browser.Run(filename, cf); err != nil {
			return fmt.Errorf("unable to start browser: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/parser"
	"github.com/mabhi256/jclassdump/internal/classfile/validate"
	"github.com/mabhi256/jclassdump/internal/render"
	"github.com/mabhi256/jclassdump/utils"
	"github.com/spf13/cobra"
)

var (
	dumpJSON    bool
	dumpHTML    string
	dumpVerbose bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump [class-file]",
	Short: `Decode a .class file and print its structure`,
	Long: `Dump decodes a Java .class file and reports:
- Class name, version, and class access flags
- Counts of constant pool entries, fields, methods, and class attributes
- With --verbose: each method's access flags, name, and descriptor, and the
  per-byte mnemonics of its Code attribute
- Any recoverable decode diagnostics and structural validation issues
Constant pool entries, fields, and attribute bodies other than Code are not
listed one by one; --json prints the whole decoded structure.`,
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

		result := validate.ClassFile(cf)

		if dumpHTML != "" {
			path, err := render.WriteClassFileReport(cf, result, filename, dumpHTML)
			if err != nil {
				return fmt.Errorf("writing html report: %w", err)
			}
			fmt.Printf("✅ Wrote %s\n", path)
			return nil
		}

		if dumpJSON {
			return printJSON(cf, result)
		}

		printSummary(filename, cf, result, len(data))
		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "print the decoded class file as JSON")
	dumpCmd.Flags().StringVar(&dumpHTML, "html", "", "write a structural HTML report to this path instead of printing")
	dumpCmd.Flags().BoolVarP(&dumpVerbose, "verbose", "v", false, "also list each method with its Code attribute's max_stack, max_locals, and per-byte mnemonics")
	rootCmd.AddCommand(dumpCmd)
}

func printJSON(cf *model.ClassFile, result *validate.Result) error {
	out := struct {
		ClassFile *model.ClassFile `json:"classFile"`
		Valid     bool              `json:"valid"`
		Issues    []string          `json:"issues,omitempty"`
	}{
		ClassFile: cf,
		Valid:     result.Valid,
	}
	for _, issue := range result.Issues {
		out.Issues = append(out.Issues, issue.Error())
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printSummary(filename string, cf *model.ClassFile, result *validate.Result, fileSize int) {
	name, _ := cf.ConstantPool.ClassName(cf.ThisClass, "this_class")
	fmt.Printf("%s (%s)\n", filename, utils.MemorySize(fileSize))
	fmt.Printf("  class:   %s (major=%d minor=%d)\n", name, cf.MajorVersion, cf.MinorVersion)
	fmt.Printf("  flags:   %s\n", utils.FormatAccessFlags(cf.AccessFlags))
	fmt.Printf("  pool:    %d entries\n", cf.ConstantPool.Count()-1)
	fmt.Printf("  fields:  %d\n", len(cf.Fields))
	fmt.Printf("  methods: %d\n", len(cf.Methods))
	fmt.Printf("  attrs:   %d\n", len(cf.Attributes))

	if dumpVerbose {
		for _, m := range cf.Methods {
			mname, _ := cf.ConstantPool.Utf8(m.NameIndex, "method name")
			mdesc, _ := cf.ConstantPool.Utf8(m.DescriptorIndex, "method descriptor")
			fmt.Printf("\n  %s %s%s\n", utils.FormatAccessFlags(m.AccessFlags), mname, mdesc)
			for _, a := range m.Attributes {
				if code, ok := a.Body.(*model.CodeAttribute); ok {
					fmt.Printf("    max_stack=%d max_locals=%d\n", code.MaxStack, code.MaxLocals)
					for _, ins := range code.Instructions {
						fmt.Printf("      %4d: %s\n", ins.Offset, ins.Mnemonic)
					}
				}
			}
		}
	}

	if len(cf.Diagnostics) > 0 {
		fmt.Printf("\n⚠️  %d decode diagnostic(s):\n", len(cf.Diagnostics))
		for _, d := range cf.Diagnostics {
			fmt.Printf("  - %s\n", d.Error())
		}
	}
	if !result.Valid {
		fmt.Printf("\n❌ %d structural validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  - %s\n", issue.Error())
		}
	}
}

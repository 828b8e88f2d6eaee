// Package render produces a single-file HTML report of a decoded class
// file: class name, superclass, version, access flags, constant pool size,
// fields and methods with their flags and attribute names, and any
// structural validation issues, with the data embedded as JSON for the
// page's own script to render into plain sections. Constant pool entries,
// bytecode, and decode diagnostics are not included.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/internal/classfile/validate"
)

// ReportData is the JSON payload embedded into the HTML page.
type ReportData struct {
	SourceFile  string        `json:"sourceFile"`
	GeneratedAt time.Time     `json:"generatedAt"`
	ClassFile   *classFileView `json:"classFile"`
	Valid       bool          `json:"valid"`
	Issues      []string      `json:"issues,omitempty"`
}

// classFileView mirrors model.ClassFile but resolves the constant pool
// indices a reader actually wants to see (names, not raw indices) while
// staying JSON-friendly.
type classFileView struct {
	MajorVersion uint16           `json:"majorVersion"`
	MinorVersion uint16           `json:"minorVersion"`
	ThisClass    string           `json:"thisClass"`
	SuperClass   string           `json:"superClass,omitempty"`
	AccessFlags  []string         `json:"accessFlags"`
	Interfaces   []string         `json:"interfaces,omitempty"`
	Fields       []memberView     `json:"fields"`
	Methods      []memberView     `json:"methods"`
	Attributes   []string         `json:"attributes"`
	PoolSize     int              `json:"constantPoolSize"`
}

type memberView struct {
	Name        string   `json:"name"`
	Descriptor  string   `json:"descriptor"`
	AccessFlags []string `json:"accessFlags"`
	Attributes  []string `json:"attributes"`
}

// WriteClassFileReport decodes cf into a ReportData, renders the HTML page,
// and writes it to outputPath (defaulting, when outputPath is empty, to a
// timestamped file named after sourceFile in the current directory).
// Returns the absolute path written.
func WriteClassFileReport(cf *model.ClassFile, result *validate.Result, sourceFile, outputPath string) (string, error) {
	view, err := buildClassFileView(cf)
	if err != nil {
		return "", fmt.Errorf("building report view: %w", err)
	}

	report := &ReportData{
		SourceFile:  sourceFile,
		GeneratedAt: time.Now(),
		ClassFile:   view,
		Valid:       result.Valid,
	}
	for _, issue := range result.Issues {
		report.Issues = append(report.Issues, issue.Error())
	}

	jsonData, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshalling report data: %w", err)
	}

	absPath, err := outputPathFor(outputPath, sourceFile)
	if err != nil {
		return "", err
	}

	content, err := renderPage(string(jsonData))
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}

	if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing html file: %w", err)
	}
	return absPath, nil
}

func buildClassFileView(cf *model.ClassFile) (*classFileView, error) {
	pool := &cf.ConstantPool

	thisName, err := pool.ClassName(cf.ThisClass, "this_class")
	if err != nil {
		return nil, err
	}

	var superName string
	if cf.SuperClass != 0 {
		superName, _ = pool.ClassName(cf.SuperClass, "super_class")
	}

	var interfaces []string
	for _, idx := range cf.Interfaces {
		name, _ := pool.ClassName(idx, "interfaces")
		interfaces = append(interfaces, name)
	}

	view := &classFileView{
		MajorVersion: cf.MajorVersion,
		MinorVersion: cf.MinorVersion,
		ThisClass:    thisName,
		SuperClass:   superName,
		AccessFlags:  flagNames(cf.AccessFlags),
		Interfaces:   interfaces,
		Attributes:   attributeNames(cf.Attributes),
		PoolSize:     pool.Count() - 1,
	}

	for _, f := range cf.Fields {
		view.Fields = append(view.Fields, buildMemberView(pool, f.NameIndex, f.DescriptorIndex, f.AccessFlags, f.Attributes))
	}
	for _, m := range cf.Methods {
		view.Methods = append(view.Methods, buildMemberView(pool, m.NameIndex, m.DescriptorIndex, m.AccessFlags, m.Attributes))
	}

	return view, nil
}

func buildMemberView(pool *model.ConstantPool, nameIdx, descIdx int, af model.AccessFlags, attrs []model.Attribute) memberView {
	name, _ := pool.Utf8(nameIdx, "name_index")
	desc, _ := pool.Utf8(descIdx, "descriptor_index")
	return memberView{
		Name:        name,
		Descriptor:  desc,
		AccessFlags: flagNames(af),
		Attributes:  attributeNames(attrs),
	}
}

func flagNames(af model.AccessFlags) []string {
	var names []string
	for _, bit := range []model.AccessFlagBit{
		model.FlagPublic, model.FlagPrivate, model.FlagProtected, model.FlagStatic,
		model.FlagFinal, model.FlagSuper, model.FlagSynchronized, model.FlagVolatile,
		model.FlagBridge, model.FlagTransient, model.FlagVarargs, model.FlagNative,
		model.FlagInterface, model.FlagAbstract, model.FlagStrict, model.FlagSynthetic,
		model.FlagAnnotation, model.FlagEnum, model.FlagModule, model.FlagMandated,
		model.FlagTransitive, model.FlagStaticPhase, model.FlagOpen,
	} {
		if af.Has(bit) {
			names = append(names, string(bit))
		}
	}
	return names
}

func attributeNames(attrs []model.Attribute) []string {
	var names []string
	for _, a := range attrs {
		names = append(names, a.Name)
	}
	return names
}

func outputPathFor(path, sourceFile string) (string, error) {
	if path == "" {
		base := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
		path = fmt.Sprintf("%s-%s.html", base, time.Now().Format("20060102_150405"))
	}
	if !strings.HasSuffix(strings.ToLower(path), ".html") {
		path += ".html"
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path for %s: %w", path, err)
	}
	if dir := filepath.Dir(absPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return absPath, nil
}

func renderPage(jsonData string) (string, error) {
	tmpl, err := template.New("report").Parse(pageTemplate)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	err = tmpl.Execute(&sb, struct {
		CSS  template.CSS
		JSON template.JS
	}{
		CSS:  template.CSS(pageCSS),
		JSON: template.JS(jsonData),
	})
	return sb.String(), err
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>jclassdump report</title>
<style>{{.CSS}}</style>
</head>
<body>
<div id="app">Loading…</div>
<script>
const report = {{.JSON}};
function el(tag, cls, text) {
  const n = document.createElement(tag);
  if (cls) n.className = cls;
  if (text !== undefined) n.textContent = text;
  return n;
}
function renderMember(title, m) {
  const box = el('div', 'member');
  box.appendChild(el('div', 'member-title', title + ' ' + m.name + m.descriptor));
  box.appendChild(el('div', 'flags', m.accessFlags.join(' ')));
  if (m.attributes.length) {
    box.appendChild(el('div', 'attrs', 'attributes: ' + m.attributes.join(', ')));
  }
  return box;
}
(function render() {
  const app = document.getElementById('app');
  app.textContent = '';
  const cf = report.classFile;
  app.appendChild(el('h1', null, cf.thisClass));
  app.appendChild(el('div', 'subtitle',
    (cf.superClass ? 'extends ' + cf.superClass + ' · ' : '') +
    'major=' + cf.majorVersion + ' minor=' + cf.minorVersion));
  app.appendChild(el('div', 'flags', cf.accessFlags.join(' ')));
  app.appendChild(el('div', 'pool-size', cf.constantPoolSize + ' constant pool entries'));

  if (!report.valid) {
    const issues = el('div', 'issues');
    issues.appendChild(el('h2', null, 'Validation issues'));
    report.issues.forEach(i => issues.appendChild(el('div', 'issue', i)));
    app.appendChild(issues);
  }

  const fields = el('div', 'section');
  fields.appendChild(el('h2', null, 'Fields (' + cf.fields.length + ')'));
  cf.fields.forEach(f => fields.appendChild(renderMember('field', f)));
  app.appendChild(fields);

  const methods = el('div', 'section');
  methods.appendChild(el('h2', null, 'Methods (' + cf.methods.length + ')'));
  cf.methods.forEach(m => methods.appendChild(renderMember('method', m)));
  app.appendChild(methods);
})();
</script>
</body>
</html>
`

const pageCSS = `
body { font-family: -apple-system, sans-serif; margin: 2rem; background: #1a1a1a; color: #ccc; }
h1 { color: #fff; margin-bottom: 0.2rem; }
.subtitle { color: #888; margin-bottom: 1rem; }
.flags { color: #4682b4; font-family: monospace; margin-bottom: 0.5rem; }
.pool-size { color: #888; margin-bottom: 1.5rem; }
.section { margin-top: 1.5rem; }
.member { border-left: 2px solid #666; padding: 0.3rem 0 0.3rem 0.8rem; margin: 0.4rem 0; }
.member-title { font-family: monospace; color: #eee; }
.attrs { color: #888; font-size: 0.9em; }
.issues { border: 1px solid #cc3333; padding: 0.5rem 1rem; margin: 1rem 0; }
.issue { color: #ff6666; font-family: monospace; }
`

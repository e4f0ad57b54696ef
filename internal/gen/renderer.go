package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/emanuelbalogun/LightBnB/internal/naming"
)

const sqlqImport = "github.com/emanuelbalogun/LightBnB/sqlq"

// RenderOption controls the output of RenderFile.
type RenderOption struct {
	DestPkg      string // output package name (empty = same as source)
	SourceImport string // import path for source package (required when DestPkg is set)
}

// Render generates the Go source code for a single StructInfo.
// The returned bytes are formatted by gofmt.
func Render(info *StructInfo) ([]byte, error) {
	return RenderFile([]*StructInfo{info}, RenderOption{})
}

// RenderFile generates a single Go source file for all given StructInfos.
// The returned bytes are formatted by gofmt.
func RenderFile(infos []*StructInfo, opt RenderOption) ([]byte, error) {
	if len(infos) == 0 {
		return nil, errors.New("no structs to render")
	}
	if opt.DestPkg != "" && opt.SourceImport == "" {
		return nil, errors.New("source import is required with a destination package")
	}

	pkg := opt.DestPkg
	if pkg == "" {
		pkg = infos[0].Package
	}

	typePrefix := ""
	if opt.SourceImport != "" {
		// e.g. "github.com/emanuelbalogun/LightBnB/model" → "model."
		parts := strings.Split(opt.SourceImport, "/")
		typePrefix = parts[len(parts)-1] + "."
	}

	structs := make([]templateData, 0, len(infos))
	for _, info := range infos {
		pk, err := info.PrimaryKeyField()
		if err != nil {
			return nil, err
		}
		if pk.ReadOnly {
			return nil, fmt.Errorf("%s: primary key %s cannot be readonly", info.Name, pk.Name)
		}
		table := info.TableName
		if table == "" {
			table = naming.TableName(info.Name)
		}

		structs = append(structs, templateData{
			TypeName:    typePrefix + info.Name,
			TableName:   table,
			FactoryName: naming.SnakeToCamel(table),
			PK:          pk,
			Fields:      info.Fields,
			ScanFunc:    unexportedName("scan" + info.Name),
			ColValFunc:  unexportedName(info.Name + "ColumnValuePairs"),
			ColumnsVar:  unexportedName(naming.SnakeToCamel(table) + "Columns"),
			Joins:       info.Joins,
		})
	}

	fileData := fileTemplateData{
		Package:      pkg,
		SourceImport: opt.SourceImport,
		SQLQImport:   sqlqImport,
		Structs:      structs,
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, fileData); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return src, nil
}

type fileTemplateData struct {
	Package      string
	SourceImport string
	SQLQImport   string
	Structs      []templateData
}

type templateData struct {
	TypeName    string
	TableName   string
	FactoryName string
	PK          *FieldInfo
	Fields      []FieldInfo
	ScanFunc    string
	ColValFunc  string
	ColumnsVar  string
	Joins       []JoinInfo
}

// Columns returns the fields that are selected and written by default.
// Readonly fields are only scanned when a query selects them explicitly.
func (d templateData) Columns() []FieldInfo {
	var fields []FieldInfo
	for _, f := range d.Fields {
		if !f.ReadOnly {
			fields = append(fields, f)
		}
	}
	return fields
}

// NonPKFields returns the writable fields minus the primary key.
func (d templateData) NonPKFields() []FieldInfo {
	var fields []FieldInfo
	for _, f := range d.Fields {
		if !f.PrimaryKey && !f.ReadOnly {
			fields = append(fields, f)
		}
	}
	return fields
}

var funcMap = template.FuncMap{
	"quote": func(s string) string {
		return `"` + s + `"`
	},
}

var fileTmpl = template.Must(template.New("gen").Funcs(funcMap).Parse(fileTemplate))

const fileTemplate = `// Code generated by sqlqgen; DO NOT EDIT.

package {{.Package}}

import (
	"database/sql"

	"{{.SQLQImport}}"
	{{- if .SourceImport}}
	"{{.SourceImport}}"
	{{- end}}
)
{{range .Structs}}
// {{.FactoryName}} returns a new Query for the {{.TableName}} table.
func {{.FactoryName}}(db sqlq.Querier) *sqlq.Query[{{.TypeName}}] {
	{{- if .Joins}}
	q := sqlq.NewQuery[{{.TypeName}}](
		db, sqlq.ResolveTableName[{{.TypeName}}]({{quote .TableName}}), {{.ColumnsVar}}, {{quote .PK.Column}},
		{{.ScanFunc}}, {{.ColValFunc}},
	)
	{{- range .Joins}}
	q.RegisterJoin({{quote .Name}}, sqlq.JoinConfig{
		TargetTable: {{quote .TargetTable}}, TargetColumn: {{quote .TargetColumn}},
		SourceTable: {{quote .SourceTable}}, SourceColumn: {{quote .SourceColumn}},
	})
	{{- end}}
	return q
	{{- else}}
	return sqlq.NewQuery[{{.TypeName}}](
		db, sqlq.ResolveTableName[{{.TypeName}}]({{quote .TableName}}), {{.ColumnsVar}}, {{quote .PK.Column}},
		{{.ScanFunc}}, {{.ColValFunc}},
	)
	{{- end}}
}

var {{.ColumnsVar}} = []string{ {{- range $i, $f := .Columns}}{{if $i}}, {{end}}{{quote $f.Column}}{{end -}} }

func {{.ScanFunc}}(rows *sql.Rows) ({{.TypeName}}, error) {
	var v {{.TypeName}}
	cols, err := rows.Columns()
	if err != nil {
		return v, err
	}
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		{{- range .Fields}}
		case {{quote .Column}}:
			{{- if .NullZero}}
			dest[i] = sqlq.NullZero(&v.{{.Name}})
			{{- else}}
			dest[i] = &v.{{.Name}}
			{{- end}}
		{{- end}}
		default:
			dest[i] = new(any)
		}
	}
	err = rows.Scan(dest...)
	return v, err
}

func {{.ColValFunc}}(v *{{.TypeName}}, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{ {{- range $i, $f := .Columns}}{{if $i}}, {{end}}{{quote $f.Column}}{{end -}} },
			[]any{ {{- range $i, $f := .Columns}}{{if $i}}, {{end}}v.{{$f.Name}}{{end -}} }
	}
	return []string{ {{- range $i, $f := .NonPKFields}}{{if $i}}, {{end}}{{quote $f.Column}}{{end -}} },
		[]any{ {{- range $i, $f := .NonPKFields}}{{if $i}}, {{end}}v.{{$f.Name}}{{end -}} }
}
{{end}}`

func unexportedName(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

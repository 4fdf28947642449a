// Package docs builds the Swagger 2.0 document from the route table and
// registers it with swag so echo-swagger can serve it.
package docs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-openapi/spec"
	"github.com/invopop/jsonschema"
	"github.com/swaggo/swag"
)

// Param is a path or query parameter.
type Param struct {
	Name        string
	In          string // "path" or "query"
	Type        string
	Format      string
	Description string
	Required    bool
}

// Response documents one status code. Body is a zero value of the
// response type, or nil for none.
type Response struct {
	Code        int
	Description string
	Body        interface{}
}

// Operation describes one endpoint. Path uses echo syntax (/cars/:id).
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Tag         string
	Params      []Param
	Body        interface{}
	Responses   []Response
}

// Info is the document header.
type Info struct {
	Title       string
	Description string
	Version     string
	BasePath    string
}

// Build turns operations into a Swagger document. Schemas of named struct
// types are emitted once under definitions and referenced from operations.
func Build(info Info, operations []Operation) (*spec.Swagger, error) {
	basePath := info.BasePath
	if basePath == "" {
		basePath = "/"
	}

	doc := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger:  "2.0",
			BasePath: basePath,
			Consumes: []string{"application/json"},
			Produces: []string{"application/json"},
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:       info.Title,
					Description: info.Description,
					Version:     info.Version,
				},
			},
			Paths:       &spec.Paths{Paths: map[string]spec.PathItem{}},
			Definitions: spec.Definitions{},
		},
	}

	b := &builder{
		definitions: doc.Definitions,
		reflector: &jsonschema.Reflector{
			Anonymous:                  true,
			AllowAdditionalProperties:  true,
			RequiredFromJSONSchemaTags: true,
		},
	}
	for _, op := range operations {
		o, err := b.operation(op)
		if err != nil {
			return nil, fmt.Errorf("operation %s: %w", op.ID, err)
		}
		path := swaggerPath(op.Path)
		item := doc.Paths.Paths[path]
		setOperation(&item, op.Method, o)
		doc.Paths.Paths[path] = item
	}
	return doc, nil
}

type builder struct {
	definitions spec.Definitions
	reflector   *jsonschema.Reflector
}

func (b *builder) operation(op Operation) (*spec.Operation, error) {
	o := spec.NewOperation(op.ID).
		WithSummary(op.Summary).
		WithDescription(op.Description)
	if op.Tag != "" {
		o.WithTags(op.Tag)
	}

	for _, p := range op.Params {
		var param *spec.Parameter
		switch p.In {
		case "path":
			param = spec.PathParam(p.Name)
		default:
			param = spec.QueryParam(p.Name)
		}
		param.Typed(p.Type, p.Format).WithDescription(p.Description)
		if p.Required || p.In == "path" {
			param.AsRequired()
		}
		o.AddParam(param)
	}

	if op.Body != nil {
		schema, err := b.schema(op.Body)
		if err != nil {
			return nil, err
		}
		o.AddParam(spec.BodyParam("body", schema).AsRequired())
	}

	responses := append([]Response(nil), op.Responses...)
	sort.SliceStable(responses, func(i, j int) bool { return responses[i].Code < responses[j].Code })
	for _, r := range responses {
		resp := spec.NewResponse().WithDescription(responseDescription(r))
		if r.Body != nil {
			schema, err := b.schema(r.Body)
			if err != nil {
				return nil, err
			}
			resp.WithSchema(schema)
		}
		o.RespondsWith(r.Code, resp)
	}
	return o, nil
}

// schema reflects v into a JSON Schema and converts it to the Swagger 2.0
// dialect: $defs move to the document definitions and examples collapse
// into the single example Swagger allows.
func (b *builder) schema(v interface{}) (*spec.Schema, error) {
	data, err := json.Marshal(b.reflector.Reflect(v))
	if err != nil {
		return nil, err
	}
	data = bytes.ReplaceAll(data, []byte(`"#/$defs/`), []byte(`"#/definitions/`))
	data = bytes.Replace(data, []byte(`"$defs":`), []byte(`"definitions":`), 1)

	var root spec.Schema
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	for name, def := range root.Definitions {
		normalize(&def)
		b.definitions[name] = def
	}
	root.Definitions = nil
	normalize(&root)
	return &root, nil
}

func normalize(s *spec.Schema) {
	s.Schema = ""
	if examples, ok := s.ExtraProps["examples"].([]interface{}); ok && len(examples) > 0 {
		s.Example = examples[0]
	}
	delete(s.ExtraProps, "examples")
	delete(s.ExtraProps, "$id")
	if len(s.ExtraProps) == 0 {
		s.ExtraProps = nil
	}

	for name, prop := range s.Properties {
		normalize(&prop)
		s.Properties[name] = prop
	}
	if s.Items != nil && s.Items.Schema != nil {
		normalize(s.Items.Schema)
	}
}

func responseDescription(r Response) string {
	if r.Description != "" {
		return r.Description
	}
	return http.StatusText(r.Code)
}

func setOperation(item *spec.PathItem, method string, op *spec.Operation) {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	case http.MethodHead:
		item.Head = op
	case http.MethodOptions:
		item.Options = op
	}
}

// swaggerPath converts /cars/:id to /cars/{id}.
func swaggerPath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") {
			segments[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

type document struct {
	mu  sync.RWMutex
	doc string
}

func (d *document) ReadDoc() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.doc
}

var published = &document{doc: "{}"}

func init() {
	swag.Register(swag.Name, published)
}

// Publish replaces the document served at /docs/doc.json.
func Publish(doc *spec.Swagger) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	published.mu.Lock()
	published.doc = string(data)
	published.mu.Unlock()
	return nil
}

// ReadDoc returns the published document.
func ReadDoc() string {
	return published.ReadDoc()
}

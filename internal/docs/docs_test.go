package docs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type Widget struct {
	ID     int64    `json:"id" jsonschema:"example=3"`
	Label  string   `json:"label" jsonschema:"required,example=blue"`
	Price  float64  `json:"price" jsonschema:"example=9.5"`
	Photo  *string  `json:"photo"`
	Tags   []string `json:"tags"`
	Hidden string   `json:"-"`
	secret string
}

type CreateWidget struct {
	Label string `json:"label" jsonschema:"required"`
}

type Failure struct {
	Message string `json:"message"`
}

func testOperations() []Operation {
	return []Operation{
		{
			ID:      "listWidgets",
			Method:  http.MethodGet,
			Path:    "/widgets",
			Summary: "List widgets",
			Tag:     "widgets",
			Responses: []Response{
				{Code: http.StatusOK, Body: []Widget{}},
			},
		},
		{
			ID:      "createWidget",
			Method:  http.MethodPost,
			Path:    "/widgets",
			Summary: "Create a widget",
			Tag:     "widgets",
			Body:    CreateWidget{},
			Responses: []Response{
				{Code: http.StatusBadRequest, Body: Failure{}},
				{Code: http.StatusCreated, Description: "Created widget", Body: Widget{}},
			},
		},
		{
			ID:     "getWidget",
			Method: http.MethodGet,
			Path:   "/widgets/:id",
			Params: []Param{{Name: "id", In: "path", Type: "integer", Format: "int64"}},
			Responses: []Response{
				{Code: http.StatusOK, Body: &Widget{}},
				{Code: http.StatusNotFound, Body: Failure{}},
			},
		},
	}
}

func TestBuild_Paths(t *testing.T) {
	doc, err := Build(Info{Title: "Widgets", Version: "1.0"}, testOperations())
	require.NoError(t, err)

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/", doc.BasePath)
	assert.Equal(t, "Widgets", doc.Info.Title)
	require.Len(t, doc.Paths.Paths, 2)

	list := doc.Paths.Paths["/widgets"]
	require.NotNil(t, list.Get)
	require.NotNil(t, list.Post)
	assert.Equal(t, "listWidgets", list.Get.ID)
	assert.Equal(t, []string{"widgets"}, list.Get.Tags)

	listOK := list.Get.Responses.StatusCodeResponses[http.StatusOK]
	require.NotNil(t, listOK.Schema)
	assert.True(t, listOK.Schema.Type.Contains("array"))
	assert.Equal(t, "#/definitions/Widget", listOK.Schema.Items.Schema.Ref.String())
	assert.Equal(t, "OK", listOK.Description)

	created := list.Post.Responses.StatusCodeResponses[http.StatusCreated]
	assert.Equal(t, "Created widget", created.Description)
	require.Len(t, list.Post.Parameters, 1)
	assert.Equal(t, "body", list.Post.Parameters[0].In)
	assert.True(t, list.Post.Parameters[0].Required)

	detail, ok := doc.Paths.Paths["/widgets/{id}"]
	require.True(t, ok)
	require.Len(t, detail.Get.Parameters, 1)
	param := detail.Get.Parameters[0]
	assert.Equal(t, "path", param.In)
	assert.Equal(t, "integer", param.Type)
	assert.Equal(t, "int64", param.Format)
	assert.True(t, param.Required)
	assert.Contains(t, detail.Get.Responses.StatusCodeResponses, http.StatusNotFound)
}

func TestBuild_Definitions(t *testing.T) {
	doc, err := Build(Info{Title: "Widgets", Version: "1.0"}, testOperations())
	require.NoError(t, err)

	require.Contains(t, doc.Definitions, "Widget")
	require.Contains(t, doc.Definitions, "CreateWidget")
	require.Contains(t, doc.Definitions, "Failure")

	w := doc.Definitions["Widget"]
	assert.True(t, w.Type.Contains("object"))
	assert.ElementsMatch(t, []string{"id", "label", "price", "photo", "tags"}, keys(w.Properties))
	assert.Equal(t, []string{"label"}, w.Required)
	assert.Empty(t, w.ExtraProps)

	assert.True(t, w.Properties["id"].Type.Contains("integer"))
	assert.Equal(t, float64(3), w.Properties["id"].Example)
	assert.Equal(t, "blue", w.Properties["label"].Example)
	assert.Equal(t, 9.5, w.Properties["price"].Example)
	assert.True(t, w.Properties["photo"].Type.Contains("string"))
	assert.Nil(t, w.Properties["photo"].Example)

	tags := w.Properties["tags"]
	assert.True(t, tags.Type.Contains("array"))
	require.NotNil(t, tags.Items)
	assert.True(t, tags.Items.Schema.Type.Contains("string"))

	assert.Equal(t, []string{"label"}, doc.Definitions["CreateWidget"].Required)
	assert.Empty(t, doc.Definitions["Failure"].Required)
}

func TestBuild_BodySchemasReferenceDefinitions(t *testing.T) {
	doc, err := Build(Info{Title: "Widgets", Version: "1.0"}, testOperations())
	require.NoError(t, err)

	post := doc.Paths.Paths["/widgets"].Post
	require.NotNil(t, post.Parameters[0].Schema)
	assert.Equal(t, "#/definitions/CreateWidget", post.Parameters[0].Schema.Ref.String())
	assert.Empty(t, post.Parameters[0].Schema.Schema)

	detail := doc.Paths.Paths["/widgets/{id}"].Get
	assert.Equal(t, "#/definitions/Widget", detail.Responses.StatusCodeResponses[http.StatusOK].Schema.Ref.String())
	assert.Equal(t, "#/definitions/Failure", detail.Responses.StatusCodeResponses[http.StatusNotFound].Schema.Ref.String())

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$defs")
	assert.NotContains(t, string(raw), "json-schema.org")
}

func TestPublish_RegistersWithSwag(t *testing.T) {
	doc, err := Build(Info{Title: "Widgets", Version: "1.0"}, testOperations())
	require.NoError(t, err)
	require.NoError(t, Publish(doc))

	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	assert.Equal(t, ReadDoc(), raw)

	var parsed spec.Swagger
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	assert.Equal(t, "Widgets", parsed.Info.Title)
	assert.Contains(t, parsed.Paths.Paths, "/widgets/{id}")
}

func TestSwaggerPath(t *testing.T) {
	assert.Equal(t, "/cars/{id}", swaggerPath("/cars/:id"))
	assert.Equal(t, "/health", swaggerPath("/health"))
	assert.Equal(t, "/a/{b}/c/{d}", swaggerPath("/a/:b/c/:d"))
}

func keys(m map[string]spec.Schema) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

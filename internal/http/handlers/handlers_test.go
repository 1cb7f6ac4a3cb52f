package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listingforge/internal/domain"
	"listingforge/internal/http/handlers"
	"listingforge/internal/http/httpapi"
	"listingforge/internal/pipeline"
	"listingforge/internal/providers/copywriter"
)

type stubCategories struct {
	items map[string]domain.CategoryPrompt
}

func (s *stubCategories) ListAll(ctx context.Context) ([]domain.CategoryPrompt, error) {
	var out []domain.CategoryPrompt
	for _, cat := range s.items {
		out = append(out, cat)
	}
	return out, nil
}

func (s *stubCategories) GetByName(ctx context.Context, name string) (domain.CategoryPrompt, error) {
	cat, ok := s.items[strings.TrimSpace(name)]
	if !ok {
		return domain.CategoryPrompt{}, fmt.Errorf("category %q: %w", name, domain.ErrNotFound)
	}
	return cat, nil
}

func (s *stubCategories) Insert(ctx context.Context, cat domain.CategoryPrompt) (int64, error) {
	s.items[cat.Name] = cat
	return int64(len(s.items)), nil
}

func (s *stubCategories) Update(ctx context.Context, cat domain.CategoryPrompt) error {
	for name, existing := range s.items {
		if existing.ID == cat.ID {
			delete(s.items, name)
			s.items[cat.Name] = cat
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *stubCategories) Delete(ctx context.Context, id int64) error {
	for name, existing := range s.items {
		if existing.ID == id {
			delete(s.items, name)
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubListings struct {
	inserted []domain.OutputRow
	filters  []domain.ListingFilter
}

func (s *stubListings) InsertBatch(ctx context.Context, rows []domain.OutputRow) (int, error) {
	s.inserted = append(s.inserted, rows...)
	return len(rows), nil
}

func (s *stubListings) ListFilters(ctx context.Context) ([]domain.ListingFilter, error) {
	return s.filters, nil
}

type stubImageLinks struct {
	groups map[string][]string
}

func (s *stubImageLinks) InsertBatch(ctx context.Context, groupName string, urls []string) error {
	if s.groups == nil {
		s.groups = map[string][]string{}
	}
	s.groups[groupName] = append(s.groups[groupName], urls...)
	return nil
}

type stubUploader struct {
	uploads []string
}

func (s *stubUploader) Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	s.uploads = append(s.uploads, folder+"/"+filename)
	return "https://cdn.example.com/" + folder + "/" + filename, nil
}

type fixedGenerator struct {
	text string
}

func (f *fixedGenerator) Generate(ctx context.Context, req copywriter.Request) (copywriter.Response, error) {
	return copywriter.Response{Text: f.text}, nil
}

type env struct {
	categories *stubCategories
	listings   *stubListings
	links      *stubImageLinks
	uploader   *stubUploader
	server     *httptest.Server
}

func newEnv(t *testing.T, gen copywriter.Generator) *env {
	t.Helper()
	e := &env{
		categories: &stubCategories{items: map[string]domain.CategoryPrompt{
			"Rugs": {ID: 1, Name: "Rugs", Template: "Write rug copy."},
		}},
		listings: &stubListings{},
		links:    &stubImageLinks{},
		uploader: &stubUploader{},
	}
	runner := pipeline.NewRunner(gen, zerolog.Nop(), pipeline.Options{Sleep: func(time.Duration) {}})
	app := handlers.NewApp(zerolog.Nop(), e.categories, e.listings, e.links, e.uploader, runner)
	e.server = httptest.NewServer(httpapi.NewRouter(app, zerolog.Nop(), ""))
	t.Cleanup(e.server.Close)
	return e
}

func multipartCSV(t *testing.T, fields map[string]string, fileField, filename, contents string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile(fileField, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestGenerateReturnsMergedRows(t *testing.T) {
	e := newEnv(t, &fixedGenerator{text: "Title 1: Lovely Rug\nDescription:\n- soft pile"})

	csv := "SKU,Name,Brand,Colour,Image Link 1\nR1,Shaggy,Acme,Red,https://img/1.jpg\nR2,Shaggy,Acme,Blue,\n"
	body, contentType := multipartCSV(t, map[string]string{"category": "Rugs"}, "file", "products.csv", csv)

	resp, err := http.Post(e.server.URL+"/v1/generate", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Rows    []domain.OutputRow   `json:"rows"`
		Reports []domain.GroupReport `json:"reports"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	require.Len(t, result.Rows, 2)
	for _, row := range result.Rows {
		assert.Equal(t, "Lovely Rug", row.Title1)
		assert.Equal(t, "* soft pile", row.Description)
		assert.Equal(t, domain.StatusGenerated, row.Status)
	}
	require.Len(t, result.Reports, 1)
	assert.Equal(t, "R1", result.Reports[0].SKU)
	assert.Empty(t, e.listings.inserted, "no persistence without persist=true")
}

func TestGeneratePersistsWhenRequested(t *testing.T) {
	e := newEnv(t, &fixedGenerator{text: "Title 1: X"})

	csv := "SKU,Name,Brand,Image Link 1\nR1,Shaggy,Acme,https://img/1.jpg\n"
	body, contentType := multipartCSV(t, map[string]string{"category": "Rugs"}, "file", "products.csv", csv)

	resp, err := http.Post(e.server.URL+"/v1/generate?persist=true", contentType, body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, e.listings.inserted, 1)
	assert.Equal(t, "X", e.listings.inserted[0].Title1)
}

func TestGenerateCSVDownload(t *testing.T) {
	e := newEnv(t, &fixedGenerator{text: "Title 1: X\nDescription:\nline one\nline two"})

	csv := "SKU,Name,Brand,Image Link 1\nR1,Shaggy,Acme,https://img/1.jpg\n"
	body, contentType := multipartCSV(t, map[string]string{"category": "Rugs"}, "file", "products.csv", csv)

	resp, err := http.Post(e.server.URL+"/v1/generate?format=csv", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"line one`+"\n"+`line two"`)
}

func TestGenerateUnknownCategory(t *testing.T) {
	e := newEnv(t, &fixedGenerator{text: "Title 1: X"})

	body, contentType := multipartCSV(t, map[string]string{"category": "Sofas"}, "file", "products.csv", "SKU,Name\nR1,Shaggy\n")
	resp, err := http.Post(e.server.URL+"/v1/generate", contentType, body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGenerateEmptyUpload(t *testing.T) {
	e := newEnv(t, &fixedGenerator{text: "Title 1: X"})

	body, contentType := multipartCSV(t, map[string]string{"category": "Rugs"}, "file", "products.csv", "SKU,Name\n,\n")
	resp, err := http.Post(e.server.URL+"/v1/generate", contentType, body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoryCRUD(t *testing.T) {
	e := newEnv(t, &fixedGenerator{})

	payload := `{"category_name":"Cushions","gpt_prompt":"Write cushion copy."}`
	resp, err := http.Post(e.server.URL+"/v1/categories", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, e.categories.items, "Cushions")

	resp, err = http.Post(e.server.URL+"/v1/categories", "application/json", strings.NewReader(`{"category_name":""}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "validation must reject empty fields")

	resp, err = http.Get(e.server.URL + "/v1/categories")
	require.NoError(t, err)
	var list struct {
		Items []domain.CategoryPrompt `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Len(t, list.Items, 2)

	req, _ := http.NewRequest(http.MethodDelete, e.server.URL+"/v1/categories/1", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	req, _ = http.NewRequest(http.MethodDelete, e.server.URL+"/v1/categories/99", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestImportListingsColumnMismatch(t *testing.T) {
	e := newEnv(t, &fixedGenerator{})

	body, contentType := multipartCSV(t, nil, "file", "listings.csv", "SKU,Name,Wrong\n1,2,3\n")
	resp, err := http.Post(e.server.URL+"/v1/listings/import", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "column_mismatch", errBody["error"])
	assert.Empty(t, e.listings.inserted, "no partial insert on mismatch")
}

func TestUploadImages(t *testing.T) {
	e := newEnv(t, &fixedGenerator{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("category", "Rugs"))
	require.NoError(t, mw.WriteField("name", "shaggy rug"))
	require.NoError(t, mw.WriteField("colour", "deep red"))
	for _, name := range []string{"front.jpg", "back.jpg"} {
		part, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("img"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	resp, err := http.Post(e.server.URL+"/v1/images/upload", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		GroupName string   `json:"group_name"`
		URLs      []string `json:"urls"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Rugs-ShaggyRug-DeepRed", out.GroupName)
	assert.Len(t, out.URLs, 2)
	assert.Equal(t, []string{"Rugs-ShaggyRug-DeepRed/front.jpg", "Rugs-ShaggyRug-DeepRed/back.jpg"}, e.uploader.uploads)
	assert.Len(t, e.links.groups["Rugs-ShaggyRug-DeepRed"], 2)
}

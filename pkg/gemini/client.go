package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client performs content generation against the Generative Language API.
type Client interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// Schema describes the JSON shape requested for a schema-constrained call.
// When a request carries a Schema, the API guarantees syntactically valid
// output matching it.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Schema type names accepted by the API.
const (
	TypeString = "STRING"
	TypeNumber = "NUMBER"
	TypeObject = "OBJECT"
	TypeArray  = "ARRAY"
)

// LatLng biases grounded searches toward a geographic point.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GenerateRequest is our own request type for GenerateContent.
type GenerateRequest struct {
	Model          string
	Prompt         string
	Schema         *Schema // nil for free-text calls
	MapsGrounding  bool
	LocationBias   *LatLng
	ImageResponse  bool
	ThinkingBudget int
}

// GroundingChunk is a citation attached to a grounded response. Exactly
// one of Web or Maps is set.
type GroundingChunk struct {
	Web  *GroundingRef `json:"web,omitempty"`
	Maps *GroundingRef `json:"maps,omitempty"`
}

// GroundingRef identifies a cited source.
type GroundingRef struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// InlineImage is an image part embedded in a response.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

// GenerateResponse is our own response type from GenerateContent.
type GenerateResponse struct {
	Text    string
	Sources []GroundingChunk
	Image   *InlineImage
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Generative Language API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 120 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// --- wire types ---

type apiPart struct {
	Text       string         `json:"text,omitempty"`
	InlineData *apiInlineData `json:"inlineData,omitempty"`
}

type apiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"` // base64 on the wire
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiTool struct {
	GoogleMaps *struct{} `json:"googleMaps,omitempty"`
}

type apiRetrievalConfig struct {
	LatLng LatLng `json:"latLng"`
}

type apiToolConfig struct {
	RetrievalConfig apiRetrievalConfig `json:"retrievalConfig"`
}

type apiThinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type apiGenerationConfig struct {
	ResponseMIMEType   string             `json:"responseMimeType,omitempty"`
	ResponseSchema     *Schema            `json:"responseSchema,omitempty"`
	ResponseModalities []string           `json:"responseModalities,omitempty"`
	ThinkingConfig     *apiThinkingConfig `json:"thinkingConfig,omitempty"`
}

type apiRequest struct {
	Contents         []apiContent         `json:"contents"`
	Tools            []apiTool            `json:"tools,omitempty"`
	ToolConfig       *apiToolConfig       `json:"toolConfig,omitempty"`
	GenerationConfig *apiGenerationConfig `json:"generationConfig,omitempty"`
}

type apiGroundingMetadata struct {
	GroundingChunks []GroundingChunk `json:"groundingChunks"`
}

type apiCandidate struct {
	Content           apiContent            `json:"content"`
	GroundingMetadata *apiGroundingMetadata `json:"groundingMetadata"`
}

type apiResponse struct {
	Candidates []apiCandidate `json:"candidates"`
}

func (c *httpClient) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	apiReq := apiRequest{
		Contents: []apiContent{{Parts: []apiPart{{Text: req.Prompt}}}},
	}

	if req.MapsGrounding {
		apiReq.Tools = []apiTool{{GoogleMaps: &struct{}{}}}
	}
	if req.LocationBias != nil {
		apiReq.ToolConfig = &apiToolConfig{
			RetrievalConfig: apiRetrievalConfig{LatLng: *req.LocationBias},
		}
	}

	gc := &apiGenerationConfig{}
	if req.Schema != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = req.Schema
	}
	if req.ImageResponse {
		gc.ResponseModalities = []string{"IMAGE"}
	}
	if req.ThinkingBudget > 0 {
		gc.ThinkingConfig = &apiThinkingConfig{ThinkingBudget: req.ThinkingBudget}
	}
	if gc.ResponseMIMEType != "" || len(gc.ResponseModalities) > 0 || gc.ThinkingConfig != nil {
		apiReq.GenerationConfig = gc
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, eris.Wrap(err, "gemini: marshal request")
	}

	url := c.baseURL + "/models/" + req.Model + ":generateContent"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "gemini: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "gemini: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "gemini: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, eris.Wrap(err, "gemini: unmarshal response")
	}

	return fromAPIResponse(&apiResp), nil
}

// fromAPIResponse flattens the first candidate into our response type:
// text parts are joined, the first inline image wins, and grounding
// chunks are carried over verbatim.
func fromAPIResponse(resp *apiResponse) *GenerateResponse {
	out := &GenerateResponse{}
	if len(resp.Candidates) == 0 {
		return out
	}

	cand := resp.Candidates[0]

	var texts []string
	for _, p := range cand.Content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
		if p.InlineData != nil && out.Image == nil {
			out.Image = &InlineImage{
				MIMEType: p.InlineData.MIMEType,
				Data:     p.InlineData.Data,
			}
		}
	}
	out.Text = strings.Join(texts, "\n")

	if cand.GroundingMetadata != nil {
		out.Sources = cand.GroundingMetadata.GroundingChunks
	}

	return out
}

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/soundline/storefront/internal/config"
	"github.com/soundline/storefront/internal/models"
)

const productIndex = "products"

// Index mirrors catalog products into Elasticsearch for the fuzzy /search
// endpoint. The relational store stays authoritative for catalog listings; a
// nil Index disables indexing and search entirely.
type Index struct {
	es *elasticsearch.Client
}

func NewIndex(cfg *config.Config) (*Index, error) {
	if cfg.ESURL == "" {
		return nil, nil
	}

	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ESURL},
		Username:  cfg.ESUser,
		Password:  cfg.ESPassword,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("search: creating client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("search: connecting to %s: %w", cfg.ESURL, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: cluster info: %s", res.Status())
	}

	return &Index{es: client}, nil
}

func (ix *Index) Enabled() bool {
	return ix != nil && ix.es != nil
}

func (ix *Index) IndexProduct(ctx context.Context, prod *models.Product) error {
	if !ix.Enabled() {
		return nil
	}

	doc, err := json.Marshal(prod)
	if err != nil {
		return fmt.Errorf("search: marshal product: %w", err)
	}

	res, err := ix.es.Index(
		productIndex,
		bytes.NewReader(doc),
		ix.es.Index.WithDocumentID(strconv.FormatUint(uint64(prod.ID), 10)),
		ix.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("search: index product: %s", res.Status())
	}
	return nil
}

func (ix *Index) Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if !ix.Enabled() {
		return 0, nil, fmt.Errorf("search: index disabled")
	}

	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := ix.es.Search(
		ix.es.Search.WithContext(ctx),
		ix.es.Search.WithIndex(productIndex),
		ix.es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: query: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: query: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("search: decode response: %w", err)
	}

	prods := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		prods[i] = hit.Source
	}
	return r.Hits.Total.Value, prods, nil
}

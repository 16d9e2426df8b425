package services

import (
	"context"
	"fmt"
	"strings"

	"aromi-agent-backend/knowledge"
	"aromi-agent-backend/models"
	"aromi-agent-backend/utils"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

type contentKey struct {
	language string
	topic    string
}

// ContentService renders canned articles by topic and language.
type ContentService struct {
	tables    *knowledge.Tables
	languages *utils.KeywordMatcher[string]
	// rendered default templates; nil when caching is disabled
	cache *lru.Cache[contentKey, string]
}

// NewContentService builds the service. A cacheSize of zero disables
// memoisation of rendered default templates.
func NewContentService(tables *knowledge.Tables, cacheSize int) (*ContentService, error) {
	rules := make([]utils.Rule[string], 0, len(tables.Languages()))
	for _, name := range tables.Languages() {
		rules = append(rules, utils.Rule[string]{Keywords: []string{name}, Value: name})
	}

	s := &ContentService{
		tables:    tables,
		languages: utils.NewKeywordMatcher(rules, tables.FallbackLanguage()),
	}

	if cacheSize > 0 {
		cache, err := lru.New[contentKey, string](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create content cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

// Generate returns the article for req.Topic. Unknown languages fall back to
// English; unknown topics get the language default with the topic filled in.
func (s *ContentService) Generate(ctx context.Context, req models.ContentRequest) (*models.ContentResponse, error) {
	logger := zerolog.Ctx(ctx)
	language := s.languages.MatchExact(req.Language)

	if text, ok := s.tables.Template(language, req.Topic); ok {
		logger.Debug().Str("language", language).Str("topic", req.Topic).Msg("serving curated template")
		return &models.ContentResponse{Content: text}, nil
	}

	key := contentKey{language: language, topic: req.Topic}
	if s.cache != nil {
		if content, ok := s.cache.Get(key); ok {
			logger.Debug().Str("language", language).Str("topic", req.Topic).Msg("content cache hit")
			return &models.ContentResponse{Content: content}, nil
		}
	}

	template, ok := s.tables.LanguageDefault(language)
	if !ok {
		template, ok = s.tables.LanguageDefault(s.tables.FallbackLanguage())
	}
	if !ok {
		return nil, models.NewInternalError(fmt.Errorf("no default template for language %q", language))
	}

	content := strings.ReplaceAll(template, knowledge.TopicPlaceholder, req.Topic)
	if s.cache != nil {
		s.cache.Add(key, content)
	}

	logger.Debug().Str("language", language).Str("topic", req.Topic).Msg("rendered default template")
	return &models.ContentResponse{Content: content}, nil
}

// CachedEntries reports how many rendered templates are memoised.
func (s *ContentService) CachedEntries() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

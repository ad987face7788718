package knowledge

import (
	"context"
	"sort"
	"strings"
)

// MemoryRepository is a seed-corpus implementation used when no database is
// configured. Matching is term overlap between the query and the document
// text; crude, but enough to hand the language model a relevant context block.
type MemoryRepository struct {
	docs []Document
}

// NewMemoryRepository returns a repository over the given documents, or over
// the built-in company profile corpus when docs is empty.
func NewMemoryRepository(docs []Document) *MemoryRepository {
	if len(docs) == 0 {
		docs = seedCorpus()
	}
	return &MemoryRepository{docs: docs}
}

func (r *MemoryRepository) Search(_ context.Context, query string, limit int) ([]Document, error) {
	if limit <= 0 {
		return nil, nil
	}
	terms := strings.Fields(strings.ToLower(query))

	type scored struct {
		doc   Document
		score int
	}
	var hits []scored
	for _, d := range r.docs {
		text := strings.ToLower(d.Title + " " + d.Content)
		score := 0
		for _, t := range terms {
			if len(t) < 3 {
				continue
			}
			if strings.Contains(text, t) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{doc: d, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]Document, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.doc)
	}
	return out, nil
}

func seedCorpus() []Document {
	return []Document{
		{
			ID:    "services",
			Title: "Services",
			Content: "NextCore AI provides AI automation (chatbots, RPA, AI consulting), " +
				"web development (React, Node.js, Django), mobile app development " +
				"(Flutter, React Native), cloud services (AWS, Azure, DevOps), UI/UX design, " +
				"SEO and content writing, ecommerce development and graphic design.",
		},
		{
			ID:    "technologies",
			Title: "Technology stack",
			Content: "Frontend work uses React.js, Next.js and Vue.js. Backend work uses " +
				"Node.js, Python, Django, Flask and Laravel. Mobile apps are built with " +
				"Flutter and React Native. Databases include MongoDB, MySQL, PostgreSQL and " +
				"Firebase. AI work uses OpenAI GPT-4, TensorFlow, PyTorch and LangChain.",
		},
		{
			ID:    "contact",
			Title: "Contact",
			Content: "NextCore AI can be reached at nextcoreai.in@gmail.com or +91 6202579799. " +
				"The company is located in Bangalore, Karnataka, India.",
		},
		{
			ID:    "pricing",
			Title: "Pricing",
			Content: "Pricing depends on project scope. NextCore AI offers competitive rates, " +
				"flexible engagement models, free initial consultations and transparent estimates.",
		},
		{
			ID:    "about",
			Title: "About the company",
			Content: "NextCore AI is a Bangalore-based digital transformation company serving " +
				"startups, SMEs and enterprises globally with intelligent systems and scalable " +
				"architectures.",
		},
	}
}

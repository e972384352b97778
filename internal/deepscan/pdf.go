package deepscan

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// extractPDFText pulls plain text from a PDF body, reading at most maxPages
// pages and maxLen bytes of text. Extraction failures degrade to empty text;
// a broken PDF should cost a document, not the scan.
func extractPDFText(data []byte, maxPages, maxLen int) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Debug().Err(err).Msg("pdf parse failed")
		return ""
	}

	pages := reader.NumPage()
	if maxPages > 0 && pages > maxPages {
		pages = maxPages
	}

	var sb strings.Builder

	for i := 1; i <= pages; i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}

		content, err := p.GetPlainText(nil)
		if err != nil {
			log.Debug().Err(err).Int("page", i).Msg("pdf page extraction failed")
			continue
		}

		sb.WriteString(content)
		sb.WriteString("\n")

		if maxLen > 0 && sb.Len() > maxLen {
			break
		}
	}

	text := strings.Join(strings.Fields(sb.String()), " ")
	if maxLen > 0 && len(text) > maxLen {
		text = text[:maxLen]
	}

	return text
}

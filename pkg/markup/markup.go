// Package markup splits article bodies into renderable blocks and estimates
// reading time. It is deliberately not a markdown engine; only the two block
// prefixes the editor produces are recognized.
package markup

import "strings"

const wordsPerMinute = 200

const (
	BlockParagraph = "paragraph"
	BlockHeading   = "heading"
	BlockList      = "list"
)

type Block struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Blocks splits the body on blank lines. A chunk starting with "## " becomes a
// heading, a chunk starting with "- " becomes a list of its "- " lines,
// anything else is a paragraph. Empty chunks are dropped.
func Blocks(body string) []Block {
	chunks := strings.Split(body, "\n\n")
	blocks := make([]Block, 0, len(chunks))

	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		if strings.HasPrefix(chunk, "## ") {
			blocks = append(blocks, Block{
				Kind: BlockHeading,
				Text: strings.TrimPrefix(chunk, "## "),
			})
			continue
		}

		if strings.HasPrefix(chunk, "- ") {
			items := make([]string, 0)
			for _, line := range strings.Split(chunk, "\n") {
				if strings.HasPrefix(line, "- ") {
					items = append(items, strings.TrimPrefix(line, "- "))
				}
			}
			blocks = append(blocks, Block{Kind: BlockList, Items: items})
			continue
		}

		blocks = append(blocks, Block{Kind: BlockParagraph, Text: chunk})
	}
	return blocks
}

// ReadingTime estimates minutes at 200 words per minute, never below one.
func ReadingTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

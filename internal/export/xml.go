package export

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"devtoolbox/internal/model"
)

// EncodeXML renders the batch as a hand-built XML document. All text and
// attribute values are entity-escaped; the original tool interpolated raw
// strings, which was an injection bug, not a format decision.
func EncodeXML(batch model.Batch) []byte {
	var b strings.Builder
	b.WriteString(xml.Header)

	fmt.Fprintf(&b, "<batch id=\"%s\" tool=\"%s\" created_at=\"%s\">\n",
		escapeXML(batch.ID), escapeXML(batch.Tool), batch.CreatedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "  <stats total=\"%d\" valid=\"%d\" invalid=\"%d\" success_rate=\"%.2f\"/>\n",
		batch.Stats.TotalCount, batch.Stats.ValidCount, batch.Stats.InvalidCount, batch.Stats.SuccessRate)

	b.WriteString("  <items>\n")
	for _, item := range batch.Items {
		fmt.Fprintf(&b, "    <item id=\"%s\" index=\"%d\" status=\"%s\" valid=\"%t\">\n",
			escapeXML(item.ID), item.Index, escapeXML(string(item.Status)), item.Valid)

		if item.Error != "" {
			fmt.Fprintf(&b, "      <error>%s</error>\n", escapeXML(item.Error))
		}

		if len(item.Output) > 0 {
			b.WriteString("      <output>\n")
			for _, key := range sortedKeys(item.Output) {
				fmt.Fprintf(&b, "        <field name=\"%s\">%s</field>\n",
					escapeXML(key), escapeXML(formatCSVValue(item.Output[key])))
			}
			b.WriteString("      </output>\n")
		}

		b.WriteString("    </item>\n")
	}
	b.WriteString("  </items>\n")
	b.WriteString("</batch>\n")

	return []byte(b.String())
}

func sortedKeys(m model.GenericOutput) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func escapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}

package converter

import "strings"

// Alignment is the column alignment taken from a header cell.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// parseAlignment reads an align attribute. Missing or unrecognized values are left.
func parseAlignment(value string) Alignment {
	switch Alignment(strings.ToLower(strings.TrimSpace(value))) {
	case AlignCenter:
		return AlignCenter
	case AlignRight:
		return AlignRight
	default:
		return AlignLeft
	}
}

func (a Alignment) separator() string {
	switch a {
	case AlignCenter:
		return ":-:|"
	case AlignRight:
		return "--:|"
	default:
		return "---|"
	}
}

func (s *state) openTableHead(n Node) (string, error) {
	if parentTag(n) != "table" {
		return "", nil
	}
	s.tableHeaderRows = 0
	s.tableAlignments = s.tableAlignments[:0]
	return "| ", nil
}

// closeTableHead writes the separator row, one segment per header cell.
func (s *state) closeTableHead(n Node) (string, error) {
	if parentTag(n) != "table" {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("|")
	for _, align := range s.tableAlignments {
		sb.WriteString(align.separator())
	}
	sb.WriteString("\n")
	return sb.String(), nil
}

func (s *state) openTableRow(n Node) (string, error) {
	switch parentTag(n) {
	case "thead":
		s.tableHeaderRows++
		if s.tableHeaderRows > 1 {
			return "", s.report(WarningMalformedTable, "thead", &MalformedTableError{Rows: s.tableHeaderRows})
		}
		return "", nil
	case "tbody":
		return "| ", nil
	default:
		return "", nil
	}
}

func (s *state) openTableHeaderCell(n Node) (string, error) {
	align, _ := n.Attr("align")
	s.tableAlignments = append(s.tableAlignments, parseAlignment(align))
	return "", nil
}

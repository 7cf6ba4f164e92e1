package lib

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	vlib "github.com/mcuadros/go-version"
	"github.com/spf13/cast"
)

const (
	/*
		Pixel offset of the diagram grid origin, and the default folio
		reference format used when the project does not define one.
	*/
	gridOriginOffset = 25
	defaultFolioRef  = "%f-%l%c"

	/*
		Oldest and newest QET file versions the extractor has been
		exercised against.
	*/
	oldestSupportedVersion = "0.4"
	latestTestedVersion    = "0.100"
)

var labelPattern = regexp.MustCompile(`^(.+):(.+)$`)

/*
	Project holds the parsed XML tree of a .qet file together with the
	fields derived from it. The tree is mutated in place and written
	back, so everything the editor put in the file survives.
*/
type Project struct {
	path string
	root *Node

	Version    string
	FolioRef   string
	PageOffset int
	TotalPages int

	/*
		Collection element names whose link_type is "terminal".
	*/
	terminalTypes []string

	terminals []*Terminal
}

/*
	OpenProject parses a QET project file and extracts the terminal
	list. fromPage/toPage restrict extraction to a page range; zero
	means no bound.
*/
func OpenProject(path string, fromPage, toPage int) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}

	root, err := ParseXML(bytes.NewReader(fixupNamespaces(data)))
	if err != nil {
		return nil, fmt.Errorf("parse project: %w", err)
	}
	if root.Name() != "project" {
		return nil, fmt.Errorf("not a QET project file: root element is <%s>", root.Name())
	}

	project := &Project{
		path:     path,
		root:     root,
		Version:  root.Attr("version"),
		FolioRef: defaultFolioRef,
	}

	if vlib.CompareSimple(project.Version, latestTestedVersion) == 1 {
		log.Printf("project version %s is newer than tested version %s", project.Version, latestTestedVersion)
	}
	if project.Version != "" && vlib.CompareSimple(project.Version, oldestSupportedVersion) == -1 {
		return nil, fmt.Errorf("project version %s is older than supported version %s", project.Version, oldestSupportedVersion)
	}

	if nd := root.Find("newdiagrams"); nd != nil {
		if report := nd.Find("report"); report != nil && report.Attr("label") != "" {
			project.FolioRef = report.Attr("label")
		}
	}

	/*
		From QET 0.8 the attribute no longer exists; a missing value
		means no table-of-contents offset.
	*/
	if root.HasAttr("folioSheetQuantity") {
		project.PageOffset = cast.ToInt(root.Attr("folioSheetQuantity"))
	}

	project.TotalPages = len(root.FindAll("diagram")) + project.PageOffset
	project.terminalTypes = project.elementNamesByLinkType("terminal")
	project.scanTerminals(fromPage, toPage)

	return project, nil
}

/*
	QET writes undeclared namespace prefixes (ns0:, dc:, rdf:) into
	projects after certain logo edits, which makes the XML unparseable.
	Declare any that are missing.
*/
func fixupNamespaces(data []byte) []byte {
	prefixes := regexp.MustCompile(`[\s<]([A-Za-z0-9]+):`).FindAllSubmatch(data, -1)

	missing := []string{}
	seen := map[string]bool{}
	for _, m := range prefixes {
		prefix := string(m[1])
		if seen[prefix] {
			continue
		}
		seen[prefix] = true

		if !strings.HasPrefix(prefix, "ns") && prefix != "dc" && prefix != "rdf" {
			continue
		}
		if bytes.Contains(data, []byte(fmt.Sprintf(`xmlns:%s="%s"`, prefix, prefix))) {
			continue
		}

		missing = append(missing, fmt.Sprintf(`xmlns:%s="%s"`, prefix, prefix))
	}

	if len(missing) == 0 {
		return data
	}

	decl := " " + strings.Join(missing, " ")
	i := bytes.IndexByte(data, '>')
	if i < 0 {
		return data
	}
	if data[i-1] == '?' {
		/*
			Skip the <?xml ...?> declaration.
		*/
		j := bytes.IndexByte(data[i+1:], '>')
		if j < 0 {
			return data
		}
		i += 1 + j
	}

	fixed := make([]byte, 0, len(data)+len(decl))
	fixed = append(fixed, data[:i]...)
	fixed = append(fixed, decl...)
	fixed = append(fixed, data[i:]...)
	return fixed
}

func (p *Project) Path() string {
	return p.path
}

func (p *Project) Root() *Node {
	return p.root
}

func (p *Project) Terminals() []*Terminal {
	return p.terminals
}

/*
	elementNamesByLinkType lists the collection elements whose
	definition declares the given link_type.
*/
func (p *Project) elementNamesByLinkType(linkType string) []string {
	names := []string{}
	seen := map[string]bool{}

	collection := p.root.Find("collection")
	if collection == nil {
		return names
	}

	for _, element := range collection.Descendants("element") {
		if len(element.Children) == 0 {
			continue
		}

		definition := element.Children[0]
		if definition.Attr("link_type") == linkType && !seen[element.Attr("name")] {
			names = append(names, element.Attr("name"))
			seen[element.Attr("name")] = true
		}
	}

	return names
}

/*
	elementName resolves the displayed name of an element. Recent
	projects carry it as a dynamic text bound to ElementInfo; older
	ones keep it in the label or formula element information.
*/
func elementName(element *Node) string {
	if dt := element.Find("dynamic_texts"); dt != nil {
		for _, d := range dt.FindAll("dynamic_elmt_text") {
			if d.Attr("text_from") == "ElementInfo" {
				if text := d.Find("text"); text != nil {
					return text.Text()
				}
			}
		}
	}

	label, formula := "", ""
	if infos := element.Find("elementInformations"); infos != nil {
		for _, info := range infos.FindAll("elementInformation") {
			switch info.Attr("name") {
			case "label":
				label = info.Text()
			case "formula":
				formula = info.Text()
			}
		}
	}

	if label == "" {
		return formula
	}
	return label
}

func elementMeta(element *Node) Meta {
	meta := ""
	if infos := element.Find("elementInformations"); infos != nil {
		for _, info := range infos.FindAll("elementInformation") {
			if info.Attr("name") == "function" {
				meta = info.Text()
				break
			}
		}
	}

	return ParseMeta(meta)
}

/*
	A valid terminal has a label of the form "block:name" and an
	element type ending in one of the terminal collection names.
*/
func (p *Project) isValidTerminal(element *Node) bool {
	if !labelPattern.MatchString(strings.TrimSpace(elementName(element))) {
		return false
	}
	if !element.HasAttr("type") {
		return false
	}

	for _, name := range p.terminalTypes {
		if strings.HasSuffix(element.Attr("type"), name) {
			return true
		}
	}

	return false
}

/*
	cableNum returns the number of the conductor connected to the given
	terminal pin id on a page.
*/
func cableNum(diagram *Node, terminalID string) string {
	conductors := diagram.Find("conductors")
	if conductors == nil {
		return ""
	}

	num := ""
	for _, conductor := range conductors.FindAll("conductor") {
		for _, attr := range conductor.Attrs {
			if strings.HasPrefix(attr.Name.Local, "terminal") && attr.Value == terminalID {
				num = conductor.Attr("num")
			}
		}
	}

	return num
}

/*
	gridRef maps page coordinates to the row letter and column number
	of the diagram grid.
*/
func gridRef(diagram *Node, x, y int) (string, string) {
	rows := cast.ToInt(diagram.Attr("rows"))
	rowSize := cast.ToInt(diagram.Attr("rowsize"))
	colSize := cast.ToInt(diagram.Attr("colsize"))
	if rowSize == 0 || colSize == 0 {
		return "", ""
	}

	row := (y - gridOriginOffset) / rowSize
	if row < 0 {
		row = 0
	}
	if rows > 0 && row >= rows {
		row = rows - 1
	}

	col := (x-gridOriginOffset)/colSize + 1
	return string(rune('A' + row)), strconv.Itoa(col)
}

/*
	xref formats the cross reference label for an element, substituting
	the folio reference tags with page, row and column values.
*/
func (p *Project) xref(diagram, element *Node) string {
	x := int(cast.ToFloat64(element.Attr("x")))
	y := int(cast.ToFloat64(element.Attr("y")))
	row, col := gridRef(diagram, x, y)
	page := strconv.Itoa(cast.ToInt(diagram.Attr("order")) + p.PageOffset)

	ref := p.FolioRef
	ref = strings.ReplaceAll(ref, "%f", page)
	if strings.Contains(ref, "%F") {
		folio := diagram.Attr("folio")
		folio = strings.ReplaceAll(folio, "%id", page)
		folio = strings.ReplaceAll(folio, "%total", strconv.Itoa(p.TotalPages))
		folio = strings.ReplaceAll(folio, "%autonum", page)
		ref = strings.ReplaceAll(ref, "%F", folio)
	}
	ref = strings.ReplaceAll(ref, "%M", diagram.Attr("machine"))
	ref = strings.ReplaceAll(ref, "%LM", diagram.Attr("locmach"))
	ref = strings.ReplaceAll(ref, "%l", row)
	ref = strings.ReplaceAll(ref, "%c", col)

	return ref
}

func (p *Project) scanTerminals(fromPage, toPage int) {
	terminals := []*Terminal{}
	seen := map[string]bool{}

	for _, diagram := range p.root.FindAll("diagram") {
		order := cast.ToInt(diagram.Attr("order"))
		if fromPage > 0 && order < fromPage {
			continue
		}
		if toPage > 0 && order > toPage {
			continue
		}

		for _, element := range diagram.Descendants("element") {
			if !p.isValidTerminal(element) {
				continue
			}
			if seen[element.Attr("uuid")] {
				continue
			}
			seen[element.Attr("uuid")] = true

			label := strings.TrimSpace(elementName(element))
			block, name, _ := strings.Cut(label, ":")
			meta := elementMeta(element)

			/*
				The conductor number comes from the first pin, falling
				back to the second when the first is unconnected.
			*/
			cable := ""
			if pins := element.Find("terminals"); pins != nil {
				for _, pin := range pins.FindAll("terminal") {
					if cable = cableNum(diagram, pin.Attr("id")); cable != "" {
						break
					}
				}
			}

			pos := meta.Pos
			if pos == "" {
				pos = name
			}

			terminals = append(terminals, &Terminal{
				UUID:             element.Attr("uuid"),
				Block:            block,
				Name:             name,
				Pos:              pos,
				XRef:             p.xref(diagram, element),
				Cable:            cable,
				Hose:             meta.Hose,
				Conductor:        meta.Conductor,
				Type:             meta.Type,
				Bridge:           meta.Bridge,
				NumReserve:       meta.NumReserve,
				ReservePositions: meta.ReservePositions,
				SplitSize:        meta.SplitSize,
			})
		}
	}

	SortTerminals(terminals)
	p.terminals = terminals
}

/*
	UpdateTerminals writes the edited metadata of each record back into
	the matching element's function information, creating the child
	when the element never had one.
*/
func (p *Project) UpdateTerminals(terminals []*Terminal) {
	byUUID := map[string]*Terminal{}
	for _, t := range terminals {
		byUUID[t.UUID] = t
	}

	for _, diagram := range p.root.FindAll("diagram") {
		for _, element := range diagram.Descendants("element") {
			t, ok := byUUID[element.Attr("uuid")]
			if !ok {
				continue
			}

			value := t.Meta().Encode()
			infos := element.Find("elementInformations")
			if infos == nil {
				infos = element.NewChild("elementInformations")
			}

			found := false
			for _, info := range infos.FindAll("elementInformation") {
				if info.Attr("name") == "function" {
					info.SetText(value)
					found = true
				}
			}
			if !found {
				info := infos.NewChild("elementInformation", "name", "function", "show", "0")
				info.SetText(value)
			}
		}
	}
}

/*
	InsertBlock replaces the generated element for a block, removing
	the previous TB_<name>.elmt if present and inserting the new one at
	the top of the imported collection category.
*/
func (p *Project) InsertBlock(name string, element *Node) error {
	collection := p.root.Find("collection")
	if collection == nil {
		return fmt.Errorf("project has no element collection")
	}
	category := collection.Find("category")
	if category == nil {
		return fmt.Errorf("project collection has no category")
	}

	old := "TB_" + name + ".elmt"
	for _, child := range category.FindAll("element") {
		if child.Attr("name") == old {
			category.RemoveChild(child)
		}
	}

	category.InsertChild(0, element)
	return nil
}

/*
	Save writes the project tree to the given path, or over the source
	file when path is empty.
*/
func (p *Project) Save(path string) error {
	if path == "" {
		path = p.path
	}

	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	defer fp.Close()

	return WriteXML(fp, p.root)
}

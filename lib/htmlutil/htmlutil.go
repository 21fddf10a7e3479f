package htmlutil

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText renders the text content of a selection with non-printable
// characters dropped and runs of whitespace (nbsp included) collapsed to one
// space.
func CleanText(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		buffer.WriteString(GetText(n))
	}
	text := strings.ReplaceAll(buffer.String(), " ", " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = removeNonPrintable(text)
	return strings.TrimSpace(text)
}

// IDFromPath pulls the numeric id out of an href whose path follows the
// "/<segment>/<id>/" template, e.g. IDFromPath("https://funpay.com/lots/149/", "lots").
// Absolute and site-relative hrefs both work.
func IDFromPath(href, segment string) (int64, error) {
	tail, err := PathTail(href, segment)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(tail, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("href %q does not carry a numeric id: %w", href, err)
	}
	return id, nil
}

// PathTail returns the final path element of an href following the
// "/<segment>/<tail>/" template, for ids that are not numeric (order codes).
func PathTail(href, segment string) (string, error) {
	link, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	rest, found := strings.CutPrefix(link.Path, "/"+segment+"/")
	if !found {
		return "", fmt.Errorf("href %q does not match /%s/<id>/", href, segment)
	}
	return strings.TrimSuffix(rest, "/"), nil
}

var backgroundImage = regexp.MustCompile(`url\(['"]?(.*?)['"]?\)`)

// URLFromStyle pulls the image link out of an inline
// "background-image: url(...);" style attribute.
func URLFromStyle(style string) string {
	groups := backgroundImage.FindStringSubmatch(style)
	if groups == nil {
		return ""
	}
	return groups[1]
}

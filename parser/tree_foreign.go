package parser

import (
	"strings"

	"github.com/heathj/htmlkit/parser/dom"
)

var svgTagNames = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"fedropshadow":        "feDropShadow",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

var svgAttributeNames = map[string]string{
	"attributename":       "attributeName",
	"attributetype":       "attributeType",
	"basefrequency":       "baseFrequency",
	"baseprofile":         "baseProfile",
	"calcmode":            "calcMode",
	"clippathunits":       "clipPathUnits",
	"diffuseconstant":     "diffuseConstant",
	"edgemode":            "edgeMode",
	"filterunits":         "filterUnits",
	"glyphref":            "glyphRef",
	"gradienttransform":   "gradientTransform",
	"gradientunits":       "gradientUnits",
	"kernelmatrix":        "kernelMatrix",
	"kernelunitlength":    "kernelUnitLength",
	"keypoints":           "keyPoints",
	"keysplines":          "keySplines",
	"keytimes":            "keyTimes",
	"lengthadjust":        "lengthAdjust",
	"limitingconeangle":   "limitingConeAngle",
	"markerheight":        "markerHeight",
	"markerunits":         "markerUnits",
	"markerwidth":         "markerWidth",
	"maskcontentunits":    "maskContentUnits",
	"maskunits":           "maskUnits",
	"numoctaves":          "numOctaves",
	"pathlength":          "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":    "patternTransform",
	"patternunits":        "patternUnits",
	"pointsatx":           "pointsAtX",
	"pointsaty":           "pointsAtY",
	"pointsatz":           "pointsAtZ",
	"preservealpha":       "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":      "primitiveUnits",
	"refx":                "refX",
	"refy":                "refY",
	"repeatcount":         "repeatCount",
	"repeatdur":           "repeatDur",
	"requiredextensions":  "requiredExtensions",
	"requiredfeatures":    "requiredFeatures",
	"specularconstant":    "specularConstant",
	"specularexponent":    "specularExponent",
	"spreadmethod":        "spreadMethod",
	"startoffset":         "startOffset",
	"stddeviation":        "stdDeviation",
	"stitchtiles":         "stitchTiles",
	"surfacescale":        "surfaceScale",
	"systemlanguage":      "systemLanguage",
	"tablevalues":         "tableValues",
	"targetx":             "targetX",
	"targety":             "targetY",
	"textlength":          "textLength",
	"viewbox":             "viewBox",
	"viewtarget":          "viewTarget",
	"xchannelselector":    "xChannelSelector",
	"ychannelselector":    "yChannelSelector",
	"zoomandpan":          "zoomAndPan",
}

type foreignAttribute struct {
	prefix    string
	localName string
	namespace dom.Namespace
}

var foreignAttributes = map[string]foreignAttribute{
	"xlink:actuate": {"xlink", "actuate", dom.XLink},
	"xlink:arcrole": {"xlink", "arcrole", dom.XLink},
	"xlink:href":    {"xlink", "href", dom.XLink},
	"xlink:role":    {"xlink", "role", dom.XLink},
	"xlink:show":    {"xlink", "show", dom.XLink},
	"xlink:title":   {"xlink", "title", dom.XLink},
	"xlink:type":    {"xlink", "type", dom.XLink},
	"xml:lang":      {"xml", "lang", dom.XML},
	"xml:space":     {"xml", "space", dom.XML},
	"xmlns":         {"", "xmlns", dom.XMLNS},
	"xmlns:xlink":   {"xmlns", "xlink", dom.XMLNS},
}

func adjustMathMLAttributes(t *Token) {
	for i := range t.Attributes {
		if t.Attributes[i].Name == "definitionurl" {
			t.Attributes[i].Name = "definitionURL"
		}
	}
}

func adjustSVGAttributes(t *Token) {
	for i := range t.Attributes {
		if name, ok := svgAttributeNames[t.Attributes[i].Name]; ok {
			t.Attributes[i].Name = name
		}
	}
}

func adjustSVGTagName(t *Token) {
	if name, ok := svgTagNames[t.TagName]; ok {
		t.TagName = name
	}
}

func adjustForeignAttributes(t *Token) {
	for i := range t.Attributes {
		a := &t.Attributes[i]
		if a.Namespace != dom.NoNamespace {
			continue
		}
		if fa, ok := foreignAttributes[a.Name]; ok {
			a.Prefix = fa.prefix
			a.Name = fa.localName
			a.Namespace = fa.namespace
		}
	}
}

// isBreakoutTag reports whether a start tag closes foreign content.
func isBreakoutTag(t *Token) bool {
	switch t.TagName {
	case "b", "big", "blockquote", "body", "br", "center", "code", "dd", "div", "dl", "dt", "em",
		"embed", "h1", "h2", "h3", "h4", "h5", "h6", "head", "hr", "i", "img", "li", "listing", "menu",
		"meta", "nobr", "ol", "p", "pre", "ruby", "s", "small", "span", "strong", "strike", "sub",
		"sup", "table", "tt", "u", "ul", "var":
		return true
	case "font":
		for _, name := range []string{"color", "face", "size"} {
			if _, ok := t.Attr(name); ok {
				return true
			}
		}
	}
	return false
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inforeign
func (c *HTMLTreeConstructor) foreignContentHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		switch {
		case t.Data == "\u0000":
			c.parseError(unexpectedNullCharacter)
			c.insertText("\uFFFD")
		case t.isWhitespace():
			c.insertCharacter(t)
		default:
			c.insertCharacter(t)
			c.frameset = framesetNotOK
		}
		return false
	case commentToken:
		c.insertComment(t)
		return false
	case docTypeToken:
		c.parseError(doctypeInForeignContent)
		return false
	case startTagToken:
		if isBreakoutTag(t) {
			c.parseError(htmlStartTagInForeignContent)
			c.popForeignContent()
			return c.mappings[c.insertionMode](t)
		}
		c.foreignStartTag(t)
		return false
	case endTagToken:
		if t.TagName == "br" || t.TagName == "p" {
			c.parseError(htmlEndTagInForeignContent)
			c.popForeignContent()
			return c.mappings[c.insertionMode](t)
		}
		return c.foreignEndTag(t)
	}
	return false
}

// popForeignContent pops until the current node is HTML or an integration
// point.
func (c *HTMLTreeConstructor) popForeignContent() {
	for {
		cur := c.getCurrentNode()
		if cur == nil || cur.Namespace == dom.HTML || isMathMLTextIntegrationPoint(cur) || isHTMLIntegrationPoint(cur) {
			return
		}
		c.stackOfOpenElements.Pop()
	}
}

func (c *HTMLTreeConstructor) foreignStartTag(t *Token) {
	ns := c.adjustedCurrentNode().Namespace
	switch ns {
	case dom.MathML:
		adjustMathMLAttributes(t)
	case dom.SVG:
		adjustSVGTagName(t)
		adjustSVGAttributes(t)
	}
	adjustForeignAttributes(t)
	c.insertForeignElementForToken(t, ns)
	if t.SelfClosing {
		c.stackOfOpenElements.Pop()
		c.acknowledgeSelfClosing()
	}
}

func (c *HTMLTreeConstructor) foreignEndTag(t *Token) bool {
	i := len(c.stackOfOpenElements) - 1
	if i < 0 {
		return false
	}
	node := c.stackOfOpenElements[i]
	if strings.ToLower(node.NodeName) != t.TagName {
		c.parseError(foreignEndTagMismatch)
	}
	for ; i > 0; i-- {
		node = c.stackOfOpenElements[i]
		if strings.ToLower(node.NodeName) == t.TagName {
			c.popUntilNode(node)
			return false
		}
		if c.stackOfOpenElements[i-1].Namespace == dom.HTML {
			return c.mappings[c.insertionMode](t)
		}
	}
	return false
}

package formatter

import (
	"strings"

	"github.com/theoremus-urban-solutions/emstrack-routes/route"
	"github.com/theoremus-urban-solutions/emstrack-routes/tracking"
	"github.com/theoremus-urban-solutions/emstrack-routes/utils"
)

// BuildGPX serializes rt as a GPX 1.1 document: markers become waypoints and
// each leg a track segment of a single track. A nil route gives an empty document.
func (b *Builder) BuildGPX(rt *route.Route) []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sb.WriteString(`<gpx version="1.1" creator="emstrack-routes" xmlns="http://www.topografix.com/GPX/1/1">`)
	if rt != nil {
		for _, m := range rt.Markers {
			writePoint(&sb, "wpt", m.Update, m.Label, string(m.Kind))
		}
		sb.WriteString("<trk>")
		sb.WriteString("<name>")
		sb.WriteString(xmlEscape(b.Name))
		sb.WriteString("</name>")
		for _, seg := range rt.Segments {
			sb.WriteString("<trkseg>")
			for _, u := range seg {
				writePoint(&sb, "trkpt", u, "", string(u.Status))
			}
			sb.WriteString("</trkseg>")
		}
		sb.WriteString("</trk>")
	}
	sb.WriteString("</gpx>")
	return []byte(sb.String())
}

func writePoint(sb *strings.Builder, tag string, u *tracking.Update, name, kind string) {
	sb.WriteString("<")
	sb.WriteString(tag)
	sb.WriteString(` lat="`)
	sb.WriteString(utils.FormatCoordinate(u.Location.Latitude))
	sb.WriteString(`" lon="`)
	sb.WriteString(utils.FormatCoordinate(u.Location.Longitude))
	sb.WriteString(`">`)
	if !u.Timestamp.IsZero() {
		sb.WriteString("<time>")
		sb.WriteString(utils.Iso8601(u.Timestamp))
		sb.WriteString("</time>")
	}
	if name != "" {
		sb.WriteString("<name>")
		sb.WriteString(xmlEscape(name))
		sb.WriteString("</name>")
	}
	if kind != "" {
		sb.WriteString("<type>")
		sb.WriteString(xmlEscape(kind))
		sb.WriteString("</type>")
	}
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}

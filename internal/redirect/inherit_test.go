package redirect

import (
	"strings"
	"testing"
)

func TestInheritedTarget(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     string
		found    bool
	}{
		{
			name: "refresh referencing canonical",
			document: `<html><head>
<meta http-equiv="refresh" content="3; url=moved.html">
<link rel="canonical" href="moved.html" />
</head></html>`,
			want:  "moved.html",
			found: true,
		},
		{
			name: "refresh without canonical",
			document: `<html><head>
<meta http-equiv="refresh" content="3; url=moved.html">
</head></html>`,
			found: false,
		},
		{
			name: "canonical not referenced by refresh",
			document: `<html><head>
<meta http-equiv="refresh" content="3; url=elsewhere.html">
<link rel="canonical" href="moved.html">
</head></html>`,
			found: false,
		},
		{
			name: "no refresh at all",
			document: `<html><head>
<link rel="canonical" href="moved.html">
</head></html>`,
			found: false,
		},
		{
			name: "other meta tags ignored",
			document: `<html><head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width">
</head></html>`,
			found: false,
		},
		{
			name: "multi-valued rel attribute",
			document: `<html><head>
<meta http-equiv="refresh" content="0; url=next.html">
<link rel="alternate canonical" href="next.html">
</head></html>`,
			want:  "next.html",
			found: true,
		},
		{
			name: "uppercase attribute name handled by parser",
			document: `<html><head>
<META HTTP-EQUIV="refresh" CONTENT="3; url=target.html">
<link rel="canonical" href="target.html">
</head></html>`,
			want:  "target.html",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := inheritedTarget(strings.NewReader(tt.document))
			if found != tt.found {
				t.Fatalf("inheritedTarget() found = %v, expected %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("inheritedTarget() = %q, expected %q", got, tt.want)
			}
		})
	}
}

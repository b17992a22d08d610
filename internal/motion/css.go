package motion

import (
	"fmt"
	"strconv"
	"strings"

	"gradient-shine/internal/config"
)

var blobAnchors = [len(Blobs)]string{
	"top: -10%; left: -10%;",
	"top: -10%; right: -10%;",
	"bottom: -15%; left: 25%;",
	"top: 20%; left: -5%;",
}

// BlobCSS renders the stylesheet and script equivalent of the blob
// background, for copying into a web page.
func BlobCSS(colors config.GradientColors, bg config.BackgroundSettings) string {
	slots := colors.Slots()

	var sb strings.Builder
	sb.WriteString("/* Background Aurora — animated gradient blobs */\n\n")
	sb.WriteString("/* Container — fixed full-viewport overlay */\n")
	sb.WriteString(".bg-aurora {\n")
	sb.WriteString("  position: fixed;\n  inset: 0;\n  pointer-events: none;\n  overflow: hidden;\n  z-index: 0;\n")
	fmt.Fprintf(&sb, "  opacity: %s;\n", formatNumber(bg.Opacity))
	fmt.Fprintf(&sb, "  filter: blur(%spx);\n}\n\n", formatNumber(bg.Blur))
	sb.WriteString("/* Blob base — absolute positioned circles */\n")
	sb.WriteString(".bg-aurora-blob {\n  position: absolute;\n  border-radius: 50%;\n  will-change: transform;\n}\n")

	for i, cfg := range Blobs {
		size := formatNumber(cfg.Size)
		fmt.Fprintf(&sb, "\n/* Blob %d */\n.bg-aurora-blob--%d {\n", i+1, i)
		fmt.Fprintf(&sb, "  %s\n", blobAnchors[i])
		fmt.Fprintf(&sb, "  width: %svw; height: %svw;\n", size, size)
		fmt.Fprintf(&sb, "  background: radial-gradient(circle,\n    %s55 0%%, transparent 70%%);\n}\n", slots[i])
	}

	sb.WriteString("\n/* ---- Mouse-follow animation (JS) ---- */\n/*\nconst BLOB_CONFIGS = [\n")
	for _, cfg := range Blobs {
		fmt.Fprintf(&sb, "  { freqX: %s, freqY: %s, phaseX: %s, phaseY: %s,\n    ampX: %s, ampY: %s, mouseMul: %s },\n",
			formatNumber(cfg.FreqX), formatNumber(cfg.FreqY), formatNumber(cfg.PhaseX), formatNumber(cfg.PhaseY),
			formatNumber(cfg.AmpX), formatNumber(cfg.AmpY), formatNumber(cfg.MouseMul))
	}
	sb.WriteString("];\n\n")
	fmt.Fprintf(&sb, "const mouseFollow = %s;\n", formatNumber(bg.MouseFollow))
	sb.WriteString(`let mouseTarget = { x: 0, y: 0 };
let mouseCurrent = { x: 0, y: 0 };

window.addEventListener('mousemove', (e) => {
  mouseTarget.x = (e.clientX / innerWidth) - 0.5;
  mouseTarget.y = (e.clientY / innerHeight) - 0.5;
});

function animate(time) {
`)
	fmt.Fprintf(&sb, "  mouseCurrent.x += (mouseTarget.x - mouseCurrent.x) * %s;\n", formatNumber(BlobSmoothing))
	fmt.Fprintf(&sb, "  mouseCurrent.y += (mouseTarget.y - mouseCurrent.y) * %s;\n", formatNumber(BlobSmoothing))
	fmt.Fprintf(&sb, "  const mx = mouseCurrent.x * mouseFollow * %d;\n", MouseMagnitude)
	fmt.Fprintf(&sb, "  const my = mouseCurrent.y * mouseFollow * %d;\n", MouseMagnitude)
	sb.WriteString(`
  blobs.forEach((blob, i) => {
    const cfg = BLOB_CONFIGS[i];
    const x = Math.sin(time * cfg.freqX + cfg.phaseX)
              * cfg.ampX + mx * cfg.mouseMul;
    const y = Math.cos(time * cfg.freqY + cfg.phaseY)
              * cfg.ampY + my * cfg.mouseMul;
    blob.style.transform = ` + "`translate(${x}px, ${y}px)`" + `;
  });

  requestAnimationFrame(animate);
}
requestAnimationFrame(animate);
*/`)
	return sb.String()
}

// formatNumber prints the shortest decimal form, like JavaScript does.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

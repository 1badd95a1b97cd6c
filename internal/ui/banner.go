package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
     ██╗ ██████╗ ██████╗     ██████╗  ██████╗  █████╗ ██████╗ ██████╗
     ██║██╔═══██╗██╔══██╗    ██╔══██╗██╔═══██╗██╔══██╗██╔══██╗██╔══██╗
     ██║██║   ██║██████╔╝    ██████╔╝██║   ██║███████║██████╔╝██║  ██║
██   ██║██║   ██║██╔══██╗    ██╔══██╗██║   ██║██╔══██║██╔══██╗██║  ██║
╚█████╔╝╚██████╔╝██████╔╝    ██████╔╝╚██████╔╝██║  ██║██║  ██║██████╔╝
 ╚════╝  ╚═════╝ ╚═════╝     ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝
 @fr4nk3nst1ner
`

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	steps := float32(len(chars))

	var colored strings.Builder
	for i, ch := range chars {
		colored.WriteString(startColor.Fade(0, steps, float32(i), endColor).Sprint(ch))
	}
	return colored.String()
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// FormatURL formats a URL, optionally as a clickable terminal hyperlink using OSC 8 escape sequence
func FormatURL(url string, useHyperlink bool) string {
	if !useHyperlink {
		return url
	}
	// Using \a (BEL) as the terminator for wider compatibility
	return fmt.Sprintf("\033]8;;%s\a%s\033]8;;\a", url, url)
}

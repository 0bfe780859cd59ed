package markup

import "github.com/cptaffe/ansi-styles/span"

const welcome = `Welcome to <span class="ansi-33">Rebane</span>&#39;s <span class="ansi-45"><span class="ansi-37">Discord</span></span> ` +
	`<span class="ansi-31">C</span><span class="ansi-32">o</span><span class="ansi-33">l</span>` +
	`<span class="ansi-34">o</span><span class="ansi-35">r</span><span class="ansi-36">e</span>` +
	`<span class="ansi-37">d</span> Text Generator!`

// WelcomeMarkup is the markup a new editor starts with.
func WelcomeMarkup() string { return welcome }

// Welcome returns the starting document.
func Welcome() span.Document {
	d, err := Parse(welcome)
	if err != nil {
		panic(err)
	}
	return d
}

package utils

import "fmt"

const DownloadEmailSubject = "🎰 Your JoedankBeats Download is Ready"

type DownloadLink struct {
	Name string
	URL  string
}

// GenerateDownloadEmailHTML génère l'e-mail de fulfilment avec tous les liens
// de téléchargement de la commande
func GenerateDownloadEmailHTML(links []DownloadLink) string {
	itemsHTML := ""
	for _, link := range links {
		itemsHTML += fmt.Sprintf(
			`<li style="margin-bottom:8px"><a href="%s" style="color:#D4AF37">%s</a></li>`,
			link.URL, link.Name)
	}

	return fmt.Sprintf(`
<div style="background:#0a0a0a;padding:40px;font-family:monospace;color:white;max-width:600px;margin:0 auto">
	<h1 style="color:#D4AF37;font-size:2rem;letter-spacing:0.1em;margin-bottom:0.5rem">JACKPOT</h1>
	<p style="color:rgba(255,255,255,0.5);font-size:0.8rem;letter-spacing:0.2em;text-transform:uppercase;margin-bottom:2rem">
		Your purchase is confirmed
	</p>
	<p style="color:rgba(255,255,255,0.7);margin-bottom:1rem">
		Here are your download links:
	</p>
	<ul style="color:white;padding-left:1.5rem;margin-bottom:2rem">
		%s
	</ul>
	<p style="color:rgba(255,255,255,0.3);font-size:0.75rem">
		Links are for personal use only. Do not share.<br/>
		— JoedankBeats
	</p>
</div>`, itemsHTML)
}

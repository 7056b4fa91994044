package main

import (
	"html/template"
	"os"
	"time"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
)

// galleryData 用于模板渲染的数据
type galleryData struct {
	Date  string
	Count int
	Items []galleryItem
}

type galleryItem struct {
	Label     string
	Birth     chart.BirthEvent
	SVG       template.HTML
	Positions []chart.BodyPosition
	Aspects   []chart.Aspect
}

const galleryTpl = `<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="UTF-8">
    <title>ホロスコープ一覧 - {{.Date}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; background: #faf5ff; color: #3b0764; margin: 0; padding: 24px; }
        .grid { display: grid; gap: 24px; grid-template-columns: 1fr; }
        @media (min-width: 1100px) { .grid { grid-template-columns: 1fr 1fr; } }
        .card { background: #fff; border-radius: 16px; padding: 20px; box-shadow: 0 2px 8px rgba(88, 28, 135, 0.08); }
        .card h2 { margin-top: 0; }
        table { border-collapse: collapse; width: 100%; font-size: 14px; }
        td, th { border-bottom: 1px solid #f3e8ff; padding: 4px 6px; text-align: left; }
    </style>
</head>
<body>
<h1>ホロスコープ一覧</h1>
<p>{{.Date}} ・ {{.Count}} 件</p>
<div class="grid">
{{range .Items}}
<div class="card">
    <h2>{{.Label}}</h2>
    <p>{{.Birth.Year}}年{{.Birth.Month}}月{{.Birth.Day}}日 {{printf "%02d:%02d" .Birth.Hour .Birth.Minute}} ・ 緯度{{.Birth.Latitude}}° 経度{{.Birth.Longitude}}° ・ UTC{{printf "%+g" .Birth.TimezoneOffset}}</p>
    {{.SVG}}
    <table>
        <tr><th>天体</th><th>星座</th><th>度数</th><th>ハウス</th></tr>
        {{range .Positions}}<tr><td>{{.Body.Symbol}} {{.Body.JapaneseName}}</td><td>{{.Sign.Glyph}} {{.Sign.JapaneseName}}</td><td>{{printf "%.2f" .DegreeInSign}}°</td><td>{{.House}}</td></tr>
        {{end}}
    </table>
    <table>
        <tr><th>アスペクト</th><th>天体</th><th>オーブ</th></tr>
        {{range .Aspects}}<tr><td>{{.Type.JapaneseName}}</td><td>{{.Body1.JapaneseName}} - {{.Body2.JapaneseName}}</td><td>{{.OrbString}}</td></tr>
        {{end}}
    </table>
</div>
{{end}}
</div>
</body>
</html>`

var galleryTemplate = template.Must(template.New("gallery").Parse(galleryTpl))

func writeGallery(path string, results []result) error {
	data := galleryData{
		Date:  time.Now().Format(time.DateOnly),
		Count: len(results),
	}
	for _, r := range results {
		c := r.Record.Chart
		data.Items = append(data.Items, galleryItem{
			Label: r.Record.Label,
			Birth: c.Event,
			// SVG 由本程序生成，可以直接嵌入
			SVG:       template.HTML(c.SVG),
			Positions: c.Positions(),
			Aspects:   c.Aspects,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := galleryTemplate.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

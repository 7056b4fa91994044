// Package prompt 把星盘整理成交给下游大模型的提示词。本包只负责组装消息，不调用模型。
package prompt

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
)

// DefaultQuestion 用户未提问时的鉴定焦点
const DefaultQuestion = "総合運"

const systemPrompt = `あなたは西洋占星術を極めたプロの占術家です。依頼者の心に深く寄り添い、以下のルールと依頼内容に従って、詳細で温かい鑑定文を作成してください。
* 寄り添う姿勢: 常に相談者の気持ちに深く寄り添い、優しく、丁寧で、共感的な言葉を選んでください。
* 多角的な視点: 「良い/悪い」の二元論で判断せず、どう活かせるかという視点で解釈してください。
* 具体性: 相談者が「これを試してみよう」と思えるような、具体的で分かりやすい言葉で伝えてください。
* 自己紹介はせず、直接鑑定内容に入ってください。`

const requestTpl = `## 鑑定の依頼
* 占術の種類: 西洋占星術（ホロスコープ）
* 鑑定の焦点（相談内容）: %s
* 出生データ: %04d年%d月%d日 %02d:%02d（UTC%+g）緯度%g° 経度%g°
* 占術データ:
%s
* 鑑定文の構成:
  1. ホロスコープの基本的な解釈と性格分析
  2. 主要な天体の配置とその意味
  3. ハウスの配置と人生の各領域への影響
  4. アスペクトの解釈と現在の状況への適用
  5. 今後の運勢と具体的なアドバイス
  6. 相談者の背中を押す温かいメッセージ`

// FormatChart 按天体、感受点、宫位、相位四段输出星盘文字摘要
func FormatChart(c *chart.Chart) string {
	var sb strings.Builder

	sb.WriteString("**天体の配置:**\n")
	for _, p := range c.Positions() {
		fmt.Fprintf(&sb, "- %s: %s %.2f度、%dハウス（%s/%s）\n",
			p.Body.JapaneseName(), p.Sign.JapaneseName(), p.DegreeInSign, p.House,
			p.Sign.Element(), p.Sign.Modality())
	}

	sb.WriteString("**感受点:**\n")
	for _, k := range chart.Angles() {
		a, ok := c.Angles[k]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "- %s: %s %.2f度\n", k.JapaneseName(), a.Sign.JapaneseName(), a.DegreeInSign)
	}

	sb.WriteString("**ハウス:**\n")
	if len(c.Houses) == 0 {
		sb.WriteString("データが利用できません\n")
	}
	for _, h := range c.Houses {
		fmt.Fprintf(&sb, "- %dハウス: %s %.2f度\n", h.Number, h.Sign.JapaneseName(), h.DegreeInSign)
	}

	sb.WriteString("**アスペクト:**\n")
	if len(c.Aspects) == 0 {
		sb.WriteString("なし\n")
	}
	for _, a := range c.Aspects {
		fmt.Fprintf(&sb, "- %s と %s: %s（%s）オーブ %s\n",
			a.Body1.JapaneseName(), a.Body2.JapaneseName(), a.Type.JapaneseName(), a.Type.Nature(), a.OrbString())
	}

	return sb.String()
}

// BuildMessages 生成 system + user 两条消息
func BuildMessages(c *chart.Chart, question string) []*schema.Message {
	question = strings.TrimSpace(question)
	if question == "" {
		question = DefaultQuestion
	}
	e := c.Event
	user := fmt.Sprintf(requestTpl, question,
		e.Year, e.Month, e.Day, e.Hour, e.Minute, e.TimezoneOffset, e.Latitude, e.Longitude,
		FormatChart(c))

	return []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: user},
	}
}

package imagegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"studioshot/internal/insight"
)

// analysisPrompt instructs the vision model to return a strict-JSON product
// insight. The flaw-inversion rules make old sample photos read as factory
// fresh; color names stay out because colors transfer via reference images.
const analysisPrompt = `你是一个专业的电商产品分析专家。请仔细分析这张产品图片，并结合用户上下文。

%s

请返回严格的 JSON 格式 (不要包含 Markdown 代码块标记)：

{
  "category_name": "简短的产品类别名称 (英文)",
  "mapped_category": "electronics/fashion/beauty/home/food/sports/jewelry/baby/office 之一",
  "primary_material": "主要材质",
  "surface_texture": "材质表面纹理描述 (英文)",
  "reflectiveness": "high/medium/low/none",
  "color_palette": ["主要颜色1", "主要颜色2"],
  "features": ["卖点1", "卖点2", "卖点3"],
  "target_audience": "推测的目标受众",
  "predicted_style": "设计风格",
  "suggested_scenes": ["推荐场景Key"],
  "generated_prompts": ["通用Prompt"],
  "scene_descriptions": {
    "studio-white": "强调产品材质、工艺、细节",
    "lifestyle": "强调日常使用体验和温馨感",
    "outdoor": "强调耐用性、运动属性、探险精神",
    "seasonal": "强调礼物价值、节日氛围、惊喜感",
    "luxury": "强调高端品质、精湛工艺、奢华感",
    "minimalist": "强调简约设计、现代美学、功能性"
  },
  "size_category": "pocket/palm/handheld/tabletop/desktop/furniture/large 之一",
  "size_reference": "自然语言描述产品尺寸，用于比例参照"
}

注意：
1. 缺陷反转：将旧样品照片描述为全新出厂状态。划痕写成 "flawless, pristine surface"，灰尘写成 "clean, polished finish"，磨损写成 "brand new, mint condition"。禁止出现 scratched, damaged, old, used, worn, dusty, dirty, broken, cracked, fingerprint。
2. Prompt 用自然英文描述句，聚焦产品外形、材质、纹理。不要写具体颜色名，颜色由参考图传递。不要写 4K/8K 等分辨率词。
3. scene_descriptions 每个场景写 1-2 句英文，只描述产品本身，不写灯光、机位或场景。`

// GeminiAnalyzer implements insight.Analyzer on top of the same
// generateContent endpoint the image path uses.
type GeminiAnalyzer struct {
	client *GeminiClient
}

func NewGeminiAnalyzer(client *GeminiClient) *GeminiAnalyzer {
	return &GeminiAnalyzer{client: client}
}

// Analyze asks the vision model for a structured product insight. Any failure
// degrades to the default insight so the caller never sees malformed data.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, imageData string, userCtx *insight.UserContext) (insight.ProductInsight, error) {
	if a.client.apiKey == "" {
		fallback := insight.DefaultInsight()
		return fallback, nil
	}

	result, err := a.remoteAnalyze(ctx, imageData, userCtx)
	if err != nil {
		a.client.logger.Warn().
			Err(err).
			Str("model", a.client.model).
			Msg("imagegen: product analysis failed; using default insight")
		return insight.DefaultInsight(), nil
	}
	result.Normalize()
	return result, nil
}

func (a *GeminiAnalyzer) remoteAnalyze(ctx context.Context, imageData string, userCtx *insight.UserContext) (insight.ProductInsight, error) {
	contextLine := "没有提供额外的产品文本信息。"
	if userCtx != nil {
		contextLine = fmt.Sprintf("用户提供的产品信息: 名称=%q, 描述=%q。请结合这些信息和图片进行分析。",
			userCtx.Name, userCtx.Description)
	}

	parts := []geminiPart{{Text: fmt.Sprintf(analysisPrompt, contextLine)}}
	imgPart, ok := inlinePartFromReference(imageData)
	if !ok {
		return insight.ProductInsight{}, errors.New("analyze: image must be a base64 data URL")
	}
	parts = append(parts, imgPart)

	payload := geminiGenerateContentRequest{
		Contents:         []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{ResponseMimeType: "application/json"},
	}

	var response geminiGenerateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(a.client.model))
	if err := a.client.invoke(ctx, path, payload, &response); err != nil {
		return insight.ProductInsight{}, err
	}

	text := firstTextPart(response)
	if text == "" {
		return insight.ProductInsight{}, errors.New("analyze: empty model response")
	}

	var result insight.ProductInsight
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &result); err != nil {
		return insight.ProductInsight{}, fmt.Errorf("analyze: decode insight: %w", err)
	}
	return result, nil
}

func firstTextPart(response geminiGenerateContentResponse) string {
	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

// stripCodeFence tolerates models that wrap the JSON in a markdown block
// despite the instructions.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"studioshot/internal/domain"
	"studioshot/internal/prompt"
	"studioshot/internal/recommend"
)

// promptctl compiles a prompt from a product JSON file. With -preview it
// dumps the per-layer breakdown, otherwise it prints the final prompt and
// the negative prompt.
func main() {
	var (
		productPath = flag.String("product", "", "path to a product JSON file (domain.ProductInfo)")
		sceneID     = flag.String("scene", "", "scene id; empty recommends the best scene")
		preview     = flag.Bool("preview", false, "print the layer-by-layer preview")
		recommendN  = flag.Int("recommend", 0, "print the top N scene recommendations and exit")
	)
	flag.Parse()

	if *productPath == "" {
		fmt.Fprintln(os.Stderr, "usage: promptctl -product product.json [-scene outdoor] [-preview]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*productPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read product: %v\n", err)
		os.Exit(1)
	}
	var product domain.ProductInfo
	if err := json.Unmarshal(data, &product); err != nil {
		fmt.Fprintf(os.Stderr, "parse product: %v\n", err)
		os.Exit(1)
	}

	rec := recommend.New()

	if *recommendN > 0 {
		for _, item := range rec.Recommendations(product, *recommendN) {
			marker := "  "
			if item.IsTopPick {
				marker = "* "
			}
			fmt.Printf("%s%-14s %3d  %s\n", marker, item.SceneID, item.Score, item.Reason)
		}
		return
	}

	scene := *sceneID
	if scene == "" {
		scene = rec.BestScene(product)
	}

	cfg := prompt.Config{
		Product:  product,
		Scene:    scene,
		Settings: domain.DefaultSettings(),
	}

	if *preview {
		fmt.Println(prompt.Preview(cfg))
		return
	}

	compiled := prompt.Compile(cfg)
	fmt.Println(compiled.FinalPrompt)
	if compiled.NegativePrompt != "" {
		fmt.Println()
		fmt.Println("Negative:", compiled.NegativePrompt)
	}
}

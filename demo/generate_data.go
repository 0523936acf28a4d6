//go:build ignore

// Generates a demo drive tree to catalog:
//
//	go run demo/generate_data.go -root demo-drive
//	go run ./cmd/catalogo -name "Demo" -folder demo-drive
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

type file struct {
	path string
	size int64
}

func main() {
	root := flag.String("root", "demo-drive", "Directory to create the demo tree in")
	flag.Parse()

	files := []file{
		{path: "documentos/relatorio_anual_2024.pdf", size: 2457600},
		{path: "documentos/contrato_servico.docx", size: 45056},
		{path: "documentos/notas.txt", size: 2048},
		{path: "documentos/planilha_gastos.xlsx", size: 524288},
		{path: "fotos/ferias/praia_001.jpg", size: 4718592},
		{path: "fotos/ferias/praia_002.jpg", size: 5242880},
		{path: "fotos/ferias/montanha.png", size: 2097152},
		{path: "fotos/perfil.webp", size: 131072},
		{path: "videos/aniversario.mp4", size: 734003200},
		{path: "videos/tutorial_go.mkv", size: 1258291200},
		{path: "musicas/album/faixa01.mp3", size: 8388608},
		{path: "musicas/album/faixa02.mp3", size: 9437184},
		{path: "musicas/podcast.ogg", size: 52428800},
		{path: "backups/fotos_antigas.zip", size: 157286400},
		{path: "backups/sistema.tar", size: 1073741824},
		{path: "projetos/site/index.html", size: 8192},
		{path: "projetos/site/app.js", size: 16384},
		{path: "projetos/scripts/organiza.py", size: 4096},
		{path: "instaladores/ferramenta.exe", size: 41943040},
		{path: "LEIA-ME", size: 512},
	}

	for _, f := range files {
		path := filepath.Join(*root, filepath.FromSlash(f.path))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir %s: %v\n", path, err)
			os.Exit(1)
		}
		// Sparse files keep the tree cheap to create
		out, err := os.Create(path)
		if err == nil {
			err = out.Truncate(f.size)
			out.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Demo tree with %d files created in %s\n", len(files), *root)
}

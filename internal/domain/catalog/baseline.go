// Package catalog contiene el catálogo base compilado (la lista de productos
// versionada en el código), la inferencia de categorías y la normalización de
// nombres usada como clave de emparejamiento entre fuentes.
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// baselineRow es una fila de la tabla compilada: precios COP enteros,
// stock inicial y assets conocidos.
type baselineRow struct {
	name      string
	wholesale int64
	retail    int64
	stock     int
	image     string
	video     string
	featured  bool
	combo     bool
}

const fallbackImage = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=800"

const cdnBase = "https://d2nagnwby8accc.cloudfront.net/companies/products/images/800/"

var baselineRows = []baselineRow{
	{name: "HIDROLAVADORA", wholesale: 55000, retail: 60000, stock: 12, featured: true,
		image: cdnBase + "ce2d6631-097e-4fac-8707-0e40197b19e7.webp",
		video: "https://drive.google.com/file/d/1HKIaSPSWoxumicSZNkhA33pHoxP3U_aT/view?usp=sharing"},
	{name: "SECADOR AGUACATE", wholesale: 25000, retail: 29990, stock: 20,
		image: cdnBase + "b9f080c9-be7a-409e-9784-407b0b2d75d7.webp"},
	{name: "TOPE DE PUERTA", wholesale: 7500, retail: 9000, stock: 40,
		image: cdnBase + "999d73cc-8819-4897-94b4-95fcb2b263a6.webp"},
	{name: "CEPILLO SECADOR 5 EN 1", wholesale: 62500, retail: 65000, stock: 10, featured: true,
		image: cdnBase + "12c79d58-2e43-4bfd-8399-565f85ac8411.webp"},
	{name: "RELOJ DE PARED 3D 80 CM X 100 CM", wholesale: 31500, retail: 35000, stock: 8,
		image: cdnBase + "2d500d91-f3cb-4edc-8973-1d26c616ee6d.webp"},
	{name: "COMBO TAPETE ULTRA ABSORBENTE", wholesale: 22000, retail: 23000, stock: 25, combo: true,
		image: cdnBase + "103607b0-5960-4c69-8828-c79fc64e7caa.webp"},
	{name: "DISPENSADOR DE JABÓN MULTIFUNCIONAL", wholesale: 19000, retail: 29990, stock: 30,
		image: cdnBase + "dea1e08f-f349-4a56-afe2-afed7400c6cd.webp"},
	{name: "CÁMARA DE SEGURIDAD IK100", wholesale: 46000, retail: 48000, stock: 15, featured: true,
		image: cdnBase + "068e6304-ae00-41be-bd1c-fbd0324f8b33.webp"},
	{name: "ESTANTE ESQUINERO DE BAÑO", wholesale: 40000, retail: 45000, stock: 10,
		image: cdnBase + "98d28124-b049-4977-942b-58679f29a071.webp"},
	{name: "TUBO MULTIFUNCIONAL 90 A 160 CM", wholesale: 18900, retail: 24000, stock: 18,
		image: cdnBase + "e1884248-42d9-4439-a455-d1a04b64a045.webp"},
	{name: "TUBO TENDEDERO PEQUEÑO 60 CM A 100 CM", wholesale: 16900, retail: 20000, stock: 18,
		image: cdnBase + "7fcdec79-f1de-47cd-99c3-19ae0279daa9.webp"},
	{name: "TUBO MULTIFUNCIONAL GRANDE 160 A 300 CM", wholesale: 27900, retail: 30000, stock: 12,
		image: cdnBase + "7fcdec79-f1de-47cd-99c3-19ae0279daa9.webp"},
	{name: "LAMPARA SOLAR PANEL 6000W", wholesale: 31900, retail: 35000, stock: 14,
		image: cdnBase + "3f72a9d2-f197-40aa-9787-7bf67e4becea.webp"},
	{name: "PAPEL TAPIZ", wholesale: 8900, retail: 10000, stock: 50,
		image: cdnBase + "659cede6-f66e-40fd-b0a0-dc360f48ae67.webp"},
	{name: "CINTA LED 5 METROS", wholesale: 14000, retail: 17000, stock: 35,
		image: cdnBase + "a10ba212-3aa1-404c-a171-74508b45b2c4.webp"},
	{name: "GRAMERA SF-400", wholesale: 11900, retail: 13000, stock: 22,
		image: cdnBase + "057aecf9-d31a-4598-9eaa-b0065f4996d4.webp"},
	{name: "ORGANIZADOR DE ROPA SUCIA 3 COMP", wholesale: 37900, retail: 40000, stock: 10,
		image: cdnBase + "226aea1b-814a-4bae-bed7-b42a5c1fbea7.webp"},
	{name: "REMOVEDOR DE MOTA ELECTRICO DELUXE", wholesale: 16900, retail: 20000, stock: 20,
		image: cdnBase + "c3eae208-759e-4482-bee3-78792d73e468.webp"},
	{name: "CINTA DOBLE FAX EXTRAFUERTE 3M", wholesale: 7000, retail: 10000, stock: 60,
		image: cdnBase + "bf372994-39ae-430c-ba1c-f28fabec7a8d.webp"},
	{name: "TERMO LICUADORA PORTÁTIL 1500ML", wholesale: 32900, retail: 35000, stock: 16,
		image: cdnBase + "cbb8b94e-a28f-4795-80bb-26f61eec066a.webp"},
	{name: "ORGANIZADOR DUCHA 5PZS", wholesale: 62900, retail: 65000, stock: 8,
		image: cdnBase + "3932e67d-6062-421f-84d2-f41857065910.webp"},
	{name: "SET DE CUCHILLO X6 0238A", wholesale: 33900, retail: 35000, stock: 14, combo: true,
		image: "https://img.kwcdn.com/product/fancy/f3014bad-94cc-4e31-9096-71384ff36aa8.jpg?imageView2/2/w/800/q/70/format/avif"},
	{name: "ORGANIZADOR DE CALZADO 3 NIVELES", wholesale: 28000, retail: 33000, stock: 12,
		image: cdnBase + "19ac6168-c9fe-4729-94a4-54a40a473a82.webp"},
	{name: "BARBERA GEEMY", wholesale: 37000, retail: 55000, stock: 10,
		image: "https://media.falabella.com/falabellaCO/146437145_01/w=800,h=800,fit=pad"},
	{name: "DIADEMA P9", wholesale: 22000, retail: 30000, stock: 25, featured: true,
		image: cdnBase + "597b70f8-8bf7-4d6a-af26-e9acf3c28a77.webp"},
	{name: "SET DE MALETA DE ARTE", wholesale: 45000, retail: 48000, stock: 9, combo: true,
		image: cdnBase + "2e391c85-d53b-4b4c-bf9c-9af52277af6c.webp"},
	{name: "KIT ARTISTICO DE 208 PIEZAS", wholesale: 29000, retail: 35000, stock: 11, combo: true,
		image: cdnBase + "d3ee3562-db32-40a4-b669-00f5c70d31ce.webp"},
}

// BaselineID deriva el id estable de una entrada base a partir de su nombre
// normalizado. El nombre es solo para mostrar; el id es la clave que viaja
// por todas las fuentes, así que debe ser idéntico en cada arranque.
func BaselineID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("catalogo:"+NormalizeName(name))).String()
}

// Baseline construye la lista base de productos con categorías inferidas.
// Cada llamada devuelve copias frescas; los callers pueden mutar el resultado.
func Baseline() []entity.Product {
	now := time.Now()
	out := make([]entity.Product, 0, len(baselineRows))
	for _, r := range baselineRows {
		img := r.image
		if img == "" {
			img = fallbackImage
		}
		out = append(out, entity.Product{
			ID:             BaselineID(r.name),
			Name:           r.name,
			Category:       InferCategory(r.name),
			Description:    "Producto de alta calidad.",
			WholesalePrice: r.wholesale,
			RetailPrice:    r.retail,
			Stock:          r.stock,
			Image:          img,
			VideoURL:       r.video,
			Features:       []string{"Garantía de calidad", "Envío nacional", "Excelente precio"},
			Featured:       r.featured,
			Combo:          r.combo,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return out
}

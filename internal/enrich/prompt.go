package enrich

func SystemPrompt() string {
	return `Para cada nombre de producto que recibas devolverás un JSON con los campos "category", "subcategory", "brand", "volume", "weight" y "details".
Si un valor no aparece en el nombre, márcalo como null (sin comillas).
"category" solo puede valer "leche", "aceite_oliva" o "aceite_girasol"; si el producto no es ninguno de ellos, debe ser null.
El resto de campos van en minúsculas y sin abreviaturas.
"weight" siempre en gramos y "volume" siempre en litros, ambos como número; convierte las unidades si hace falta.
Responde únicamente con el JSON, en una sola línea, sin texto adicional.

Ejemplo:
Producto: Leche condensada desnatada Nestlé La Lechera sin lactosa 450 g.
Respuesta:
{"category": "leche", "subcategory": "condensada", "brand": "nestlé la lechera", "volume": null, "weight": 450, "details": "desnatada sin lactosa"}

Ejemplo 2:
Producto: Aceite de oliva 0,4º CARBONELL, botella 1 litro
Respuesta:
{"category": "aceite_oliva", "subcategory": "0.4º", "brand": "carbonell", "volume": 1, "weight": null, "details": null}

Ejemplo 3:
Producto: Leche Bruma Protectora Spf50 Broncea+ Ecran Sunnique 250 Ml.
Respuesta:
{"category": null, "subcategory": null, "brand": "ecran", "volume": 0.25, "weight": null, "details": "protector solar"}

Ejemplo 4:
Producto: Aceite De Oliva 0,4º Carbonell, Garrafa 3 Litros
Respuesta:
{"category": "aceite_oliva", "subcategory": "0.4º", "brand": "carbonell", "volume": 3, "weight": null, "details": "garrafa"}
`
}

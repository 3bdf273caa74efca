package catalogs

import "github.com/JonMunkholm/catalogo/internal/core"

func init() {
	registerContacts()
}

func registerContacts() {
	core.RegisterContact(core.ContactCard{
		Key:      "recarga",
		Title:    "Recarga",
		Subtitle: "Claro & Tim",
		Message:  "Olá, gostaria de fazer uma Recarga Claro/Tim.",
		Order:    1,
	})
	core.RegisterContact(core.ContactCard{
		Key:      "bilhete",
		Title:    "Bilhete Único",
		Subtitle: "Serviços e Recargas",
		Message:  "Olá, gostaria de falar sobre Bilhete Único.",
		Order:    2,
	})
}

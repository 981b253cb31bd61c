package catalog

// builtinNames is the demo catalog used when no catalog file is configured.
var builtinNames = []string{
	"Ander", "Andre", "Armenio", "Angelo", "Angela",
	"Mauricio", "Pedro", "Sousa", "Marcos", "Maria",
	"Julia", "Santos", "Natalia", "Jeferson", "Jonatan",
	"Paulo", "Paulinho", "John", "Doe", "Vitoria",
	"Yasmin", "Guimaraes", "Jorge", "Julio", "Maite",
	"Murilo", "Janaina", "Natasha", "Nate", "Carol",
	"Carla", "Cristiano", "Jeff", "Rafael", "Matheus",
	"Lucas", "Oliver", "Jack", "Harry", "Jacob",
	"Charlie", "Thomas", "George", "Oscar", "James",
	"William",
}

// BuiltinNames returns a copy of the demo catalog names in order.
func BuiltinNames() []string {
	return append([]string(nil), builtinNames...)
}

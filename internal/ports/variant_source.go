package ports

// VariantSource resolves a variant chosen by name by an outer caller
// (CLI flags, scenario files). Every lookup returns a fresh instance.
type VariantSource interface {
	PaymentMethod(name string) (PaymentMethod, error)
	Notification(name string) (Notification, error)
	Device(name string) (Switchable, error)
	Animal(name string) (Soundable, error)
}

package scenariofile

type yamlScenario struct {
	Name  string     `yaml:"name"`
	Steps []yamlStep `yaml:"steps"`
}

type yamlStep struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Variant string `yaml:"variant"`

	Amount   *float64 `yaml:"amount"`
	Message  string   `yaml:"message"`
	Charge   bool     `yaml:"charge"`
	Email    string   `yaml:"email"`
	Password string   `yaml:"password"`

	Expect      []yamlExpectation `yaml:"expect"`
	ExpectError string            `yaml:"expect_error"`
}

type yamlExpectation struct {
	Path     string  `yaml:"path"`
	Equals   *string `yaml:"equals"`
	Contains *string `yaml:"contains"`
}

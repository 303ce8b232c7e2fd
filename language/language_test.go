package language_test

import (
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/vibeshield/shield/language"
)

var _ = DescribeTable("Infer",
	func(filename, expected string) {
		Expect(language.Infer(filename)).To(Equal(expected))
	},
	Entry("javascript", "src/app.js", "javascript"),
	Entry("jsx", "App.jsx", "javascript"),
	Entry("typescript", "index.ts", "typescript"),
	Entry("tsx", "View.TSX", "typescript"),
	Entry("python", "/tmp/settings.py", "python"),
	Entry("dart", "main.dart", "dart"),
	Entry("java", "Main.Java", "java"),
	Entry("ruby", "config.rb", "ruby"),
	Entry("php", "wp-config.php", "php"),
	Entry("unknown extension", "notes.txt", language.Unknown),
	Entry("no extension", "Makefile", language.Unknown),
	Entry("dotfile", ".env", language.Unknown),
)

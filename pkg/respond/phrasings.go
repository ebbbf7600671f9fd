package respond

import "github.com/ojaledger/ojaledger/pkg/lang"

var phrasings = map[lang.Language]*phrasing{
	lang.English: {
		confirmIncome:       "Recorded: %s paid ₦%s.",
		confirmDebt:         "Recorded: %s owes ₦%s.",
		multiConfirm:        "Recorded %d transactions. %s",
		confirmJoined:       "Recorded for %s: %s.",
		nounIncome:          "a payment of ₦%s",
		nounDebt:            "a debt of ₦%s",
		joinWord:            "and",
		debtorEntry:         "%s ₦%s",
		debtorList:          "These customers owe you: %s.",
		noDebtors:           "Nobody owes you money right now.",
		totalIncome:         "Your total income is ₦%s.",
		totalDebt:           "The total owed to you is ₦%s.",
		totalCustomerIncome: "%s has paid you ₦%s in total.",
		totalCustomerDebt:   "%s owes you ₦%s in total.",
		capabilities:        "I can record sales and debts, and tell you your total income, total debt, and who owes you.",
		inputError:          "Sorry, I could not make that out. Please say it again.",
		backendError:        "Sorry, something went wrong on my side. Please try again shortly.",
	},
	lang.Yoruba: {
		confirmIncome:       "Mo ti kọ sílẹ̀: %s san ₦%s.",
		confirmDebt:         "Mo ti kọ sílẹ̀: %s jẹ gbèsè ₦%s.",
		multiConfirm:        "Mo ti kọ ìṣòwò %d sílẹ̀. %s",
		confirmJoined:       "Mo ti kọ sílẹ̀ fún %s: %s.",
		nounIncome:          "ìsanwó ₦%s",
		nounDebt:            "gbèsè ₦%s",
		joinWord:            "àti",
		debtorEntry:         "%s ₦%s",
		debtorList:          "Àwọn tí ó jẹ ọ́ ní gbèsè: %s.",
		noDebtors:           "Kò sí ẹni tí ó jẹ ọ́ ní gbèsè báyìí.",
		totalIncome:         "Àpapọ̀ owó tí ó wọlé jẹ́ ₦%s.",
		totalDebt:           "Àpapọ̀ gbèsè tí wọ́n jẹ ọ́ jẹ́ ₦%s.",
		totalCustomerIncome: "%s ti san ₦%s fún ọ lápapọ̀.",
		totalCustomerDebt:   "%s jẹ ọ́ ní gbèsè ₦%s lápapọ̀.",
		capabilities:        "Mo lè kọ ìtajà àti gbèsè sílẹ̀, kí n sì sọ àpapọ̀ owó tí ó wọlé, àpapọ̀ gbèsè, àti àwọn tí ó jẹ ọ́ ní gbèsè.",
		inputError:          "Má bínú, mi ò gbọ́ ọ yé. Jọ̀wọ́ tún un sọ.",
		backendError:        "Má bínú, ìṣòro kan ṣẹlẹ̀. Jọ̀wọ́ gbìyànjú lẹ́ẹ̀kan sí i.",
	},
	lang.Igbo: {
		confirmIncome:       "Edeela m ya: %s kwụrụ ₦%s.",
		confirmDebt:         "Edeela m ya: %s ji ụgwọ ₦%s.",
		multiConfirm:        "Edeela m azụmahịa %d. %s",
		confirmJoined:       "Edeela m maka %s: %s.",
		nounIncome:          "ọkwụkwụ ₦%s",
		nounDebt:            "ụgwọ ₦%s",
		joinWord:            "na",
		debtorEntry:         "%s ₦%s",
		debtorList:          "Ndị ji gị ụgwọ: %s.",
		noDebtors:           "Ọ nweghị onye ji gị ụgwọ ugbu a.",
		totalIncome:         "Mkpokọta ego batara bụ ₦%s.",
		totalDebt:           "Mkpokọta ụgwọ e ji gị bụ ₦%s.",
		totalCustomerIncome: "%s akwụọla gị ₦%s n'ozuzu.",
		totalCustomerDebt:   "%s ji gị ụgwọ ₦%s n'ozuzu.",
		capabilities:        "Enwere m ike idekọ ahịa na ụgwọ, gwakwa gị mkpokọta ego batara, mkpokọta ụgwọ, na ndị ji gị ụgwọ.",
		inputError:          "Ndo, aghọtaghị m nke ahụ. Biko kwuo ya ọzọ.",
		backendError:        "Ndo, enwere nsogbu n'akụkụ m. Biko nwaa ọzọ n'oge na-adịghị anya.",
	},
	lang.Hausa: {
		confirmIncome:       "Na rubuta: %s ya biya ₦%s.",
		confirmDebt:         "Na rubuta: %s yana bin bashin ₦%s.",
		multiConfirm:        "Na rubuta ciniki %d. %s",
		confirmJoined:       "Na rubuta wa %s: %s.",
		nounIncome:          "biyan ₦%s",
		nounDebt:            "bashin ₦%s",
		joinWord:            "da",
		debtorEntry:         "%s ₦%s",
		debtorList:          "Waɗanda ke bin ka bashi: %s.",
		noDebtors:           "Babu wanda ke bin ka bashi yanzu.",
		totalIncome:         "Jimlar kuɗin shigarka ₦%s ce.",
		totalDebt:           "Jimlar bashin da ake bin ka ₦%s ce.",
		totalCustomerIncome: "%s ya biya maka ₦%s gaba ɗaya.",
		totalCustomerDebt:   "%s yana bin ka bashin ₦%s gaba ɗaya.",
		capabilities:        "Zan iya rubuta sayarwa da bashi, in kuma gaya maka jimlar kuɗin shiga, jimlar bashi, da masu bin ka bashi.",
		inputError:          "Yi haƙuri, ban gane ba. Don Allah sake faɗa.",
		backendError:        "Yi haƙuri, an samu matsala a wurina. Don Allah sake gwadawa nan ba da daɗewa ba.",
	},
}

package controllers

type legalSection struct {
	Heading    string
	Paragraphs []string
}

type legalPage struct {
	Slug     string
	Title    string
	Sections []legalSection
}

var LegalPages = []legalPage{
	{
		Slug:  "aviso-legal",
		Title: "Aviso Legal",
		Sections: []legalSection{
			{"1. Datos identificativos", []string{
				"En cumplimiento del artículo 10 de la Ley 34/2002, de 11 de julio, de Servicios de la Sociedad de la Información y Comercio Electrónico, se informa que DESIGNOVA es un estudio de diseño ubicado en Calle del diseño 10, Valencia, España.",
				"Email de contacto: designova.studio01@gmail.com Teléfono: +34 648 840 097",
			}},
			{"2. Objeto", []string{
				"El presente aviso legal regula el uso y utilización del sitio web www.designova.es, del que es titular DESIGNOVA. La navegación por el sitio web atribuye la condición de usuario del mismo e implica la aceptación plena y sin reservas de todas y cada una de las disposiciones incluidas en este Aviso Legal.",
			}},
			{"3. Propiedad intelectual e industrial", []string{
				"Todos los contenidos del sitio web, incluyendo textos, fotografías, gráficos, imágenes, iconos, tecnología, software, así como el diseño gráfico y códigos fuente, constituyen una obra cuya propiedad pertenece a DESIGNOVA, sin que puedan entenderse cedidos al usuario ninguno de los derechos de explotación sobre los mismos más allá de lo estrictamente necesario para el correcto uso de la web.",
			}},
			{"4. Responsabilidad", []string{
				"DESIGNOVA no se hace responsable de los daños y perjuicios de cualquier naturaleza que pudieran ocasionar, a título enunciativo: errores u omisiones en los contenidos, falta de disponibilidad del portal o la transmisión de virus o programas maliciosos en los contenidos, a pesar de haber adoptado todas las medidas tecnológicas necesarias para evitarlo.",
			}},
			{"5. Legislación aplicable", []string{
				"Para la resolución de todas las controversias o cuestiones relacionadas con el presente sitio web o de las actividades en él desarrolladas, será de aplicación la legislación española, a la que se someten expresamente las partes, siendo competentes para la resolución de todos los conflictos derivados o relacionados con su uso los Juzgados y Tribunales de Valencia.",
			}},
		},
	},
	{
		Slug:  "politica-privacidad",
		Title: "Política de Privacidad",
		Sections: []legalSection{
			{"1. Responsable del tratamiento", []string{
				"DESIGNOVA es el responsable del tratamiento de los datos personales que el usuario proporcione a través de este sitio web. Contacto: designova.studio01@gmail.com",
			}},
			{"2. Datos que recopilamos", []string{
				"Recopilamos los datos personales que nos proporciona voluntariamente a través de formularios de contacto, pedidos o suscripciones:",
				"Nombre y apellidos",
				"Dirección de correo electrónico",
				"Número de teléfono",
				"Dirección postal (para envíos)",
				"Información de pago (procesada de forma segura)",
			}},
			{"3. Finalidad del tratamiento", []string{
				"Sus datos personales serán tratados con las siguientes finalidades:",
				"Gestionar sus pedidos y solicitudes de diseño",
				"Responder a sus consultas y comunicaciones",
				"Enviar información sobre nuestros servicios (con su consentimiento)",
				"Cumplir con obligaciones legales",
			}},
			{"4. Conservación de datos", []string{
				"Los datos personales se conservarán mientras se mantenga la relación comercial y durante el plazo exigido por las obligaciones legales aplicables.",
			}},
			{"5. Derechos del usuario", []string{
				"Tiene derecho a acceder, rectificar y suprimir sus datos, así como otros derechos explicados en la información adicional. Puede ejercer sus derechos contactando con nosotros en designova.studio01@gmail.com",
			}},
			{"6. Seguridad", []string{
				"Implementamos medidas de seguridad técnicas y organizativas apropiadas para proteger sus datos personales contra el acceso no autorizado, la alteración, divulgación o destrucción.",
			}},
		},
	},
	{
		Slug:  "politica-cookies",
		Title: "Política de Cookies",
		Sections: []legalSection{
			{"¿Qué son las cookies?", []string{
				"Las cookies son pequeños archivos de texto que se almacenan en su dispositivo cuando visita nuestro sitio web. Nos permiten recordar sus preferencias y mejorar su experiencia de navegación.",
			}},
			{"Tipos de cookies que utilizamos", []string{
				"Son imprescindibles para el funcionamiento del sitio web. Permiten navegar y utilizar funciones básicas como el carrito de compras.",
				"Permiten recordar información para que no tenga que configurar el sitio web cada vez que lo visite.",
				"Nos ayudan a entender cómo los visitantes interactúan con el sitio web, recopilando información de forma anónima.",
			}},
			{"Gestión de cookies", []string{
				"Puede configurar su navegador para bloquear o alertar sobre estas cookies. Sin embargo, algunas partes del sitio pueden no funcionar correctamente si desactiva las cookies necesarias.",
				"Para más información sobre cómo gestionar cookies en su navegador:",
				"Chrome: Configuración &gt; Privacidad y seguridad &gt; Cookies",
				"Firefox: Opciones &gt; Privacidad &gt; Historial",
				"Safari: Preferencias &gt; Privacidad",
				"Edge: Configuración &gt; Privacidad &gt; Cookies",
			}},
			{"Actualizaciones", []string{
				"Esta política de cookies puede actualizarse, por lo que le recomendamos revisarla periódicamente. Última actualización: Enero 2026",
			}},
		},
	},
	{
		Slug:  "terminos-condiciones",
		Title: "Términos y Condiciones",
		Sections: []legalSection{
			{"1. Condiciones generales", []string{
				"Estos términos y condiciones regulan la relación entre DESIGNOVA y los clientes que contratan nuestros servicios de diseño gráfico, invitaciones personalizadas y grabado láser.",
			}},
			{"2. Proceso de pedido", []string{
				"El cliente selecciona el producto o servicio deseado",
				"Proporciona los detalles de personalización requeridos",
				"DESIGNOVA envía una propuesta de diseño para su aprobación",
				"Una vez aprobado el diseño, se procede al pago",
				"Se realiza la producción y envío del producto",
			}},
			{"3. Precios y pagos", []string{
				"Los precios mostrados en la web incluyen IVA. El pago se realiza una vez aprobado el diseño final. Aceptamos transferencia bancaria y pago con tarjeta.",
			}},
			{"4. Revisiones de diseño", []string{
				"Cada pedido incluye hasta 2 revisiones de diseño sin coste adicional. Las revisiones adicionales pueden tener un cargo extra según la complejidad de los cambios solicitados.",
			}},
			{"5. Plazos de entrega", []string{
				"Los plazos de entrega varían según el tipo de producto:",
				"Diseños digitales: 3-5 días laborables",
				"Invitaciones impresas: 7-10 días laborables",
				"Productos con grabado láser: 5-7 días laborables",
				"Los plazos comienzan a contar desde la aprobación del diseño y confirmación de pago.",
			}},
			{"6. Cancelaciones", []string{
				"Las cancelaciones son posibles antes de la aprobación del diseño final. Una vez aprobado el diseño y realizado el pago, no se admiten cancelaciones ya que el producto es personalizado.",
			}},
			{"7. Propiedad del diseño", []string{
				"El cliente recibe los derechos de uso del diseño para el propósito acordado. DESIGNOVA se reserva el derecho de mostrar los trabajos realizados en su portafolio, salvo acuerdo expreso de confidencialidad.",
			}},
		},
	},
	{
		Slug:  "envios-devoluciones",
		Title: "Envíos y Devoluciones",
		Sections: []legalSection{
			{"Política de envíos", []string{
				"Envío estándar: 4-6 días laborables - 4,95€ Envío express: 24-48 horas - 9,95€ Envío gratuito en pedidos superiores a 50€",
				"Plazo: 7-14 días laborables Coste: Desde 12,95€ (varía según destino)",
			}},
			{"Productos digitales", []string{
				"Los diseños digitales (invitaciones para enviar por WhatsApp, posts para redes sociales, etc.) se entregan por correo electrónico en formato PDF y/o JPG de alta resolución, sin coste de envío.",
			}},
			{"Seguimiento del pedido", []string{
				"Una vez enviado su pedido, recibirá un email con el número de seguimiento para que pueda rastrear el estado de su envío en todo momento.",
			}},
			{"Política de devoluciones", []string{
				"Debido a la naturaleza personalizada de nuestros productos, no aceptamos devoluciones una vez que el diseño ha sido aprobado por el cliente y el producto ha sido fabricado.",
				"Producto dañado durante el transporte",
				"Error de fabricación por parte de DESIGNOVA",
				"Producto recibido diferente al aprobado",
			}},
			{"Proceso de reclamación", []string{
				"Si recibe un producto defectuoso o dañado:",
				"Contacte con nosotros en las primeras 48 horas tras la recepción",
				"Envíe fotografías del producto y el embalaje",
				"Evaluaremos el caso y le ofreceremos una solución",
				"Contacto: designova.studio01@gmail.com | WhatsApp: +34 648 840 097",
			}},
		},
	},
}
